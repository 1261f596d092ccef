package stubapi

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
	"github.com/woliveira1728/os-system-frontend/pkg"
)

// Handler serves the stub implementation of the OS REST contract.

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	token, user, err := h.store.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("[stub][auth] login rejected email=%s", req.Email)
		respondError(c, pkg.NewDomainErrorSimple("AUTH_INVALID", "invalid credentials", http.StatusUnauthorized))
		return
	}
	log.Printf("[stub][auth] login success email=%s", req.Email)

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	user, err := h.store.Register(req.Name, req.Email, req.Password, entities.RoleClient)
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("EMAIL_TAKEN", "email already registered", http.StatusConflict))
		return
	}
	log.Printf("[stub][auth] register success email=%s", req.Email)

	c.JSON(http.StatusCreated, user)
}

// RequireAuth guards everything outside /auth: a missing or unknown bearer
// token yields the 401 that drives the client's global session teardown.
func (h *Handler) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		respondError(c, pkg.NewDomainErrorSimple("AUTH_MISSING", "invalid token", http.StatusUnauthorized))
		c.Abort()
		return
	}
	user, ok := h.store.UserForToken(token)
	if !ok {
		respondError(c, pkg.NewDomainErrorSimple("AUTH_INVALID", "invalid token", http.StatusUnauthorized))
		c.Abort()
		return
	}
	c.Set("user", user)
	c.Next()
}

func currentUser(c *gin.Context) entities.User {
	v, _ := c.Get("user")
	user, _ := v.(entities.User)
	return user
}

func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListOrders())
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Param("id"))
	if err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var data struct {
		Title       string                 `json:"title" binding:"required"`
		Description string                 `json:"description" binding:"required"`
		Priority    entities.PriorityLevel `json:"priority"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	order := h.store.CreateOrder(currentUser(c).ID, entities.CreateOrderData{
		Title:       data.Title,
		Description: data.Description,
		Priority:    data.Priority,
	})
	log.Printf("[stub][orders] created order_id=%s title=%q", order.ID, order.Title)

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	var data entities.CreateOrderData
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	order, err := h.store.UpdateOrder(c.Param("id"), data)
	if err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status entities.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !entities.ValidOrderStatus(body.Status) {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest))
		return
	}

	order, err := h.store.UpdateOrderStatus(c.Param("id"), body.Status)
	if err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	log.Printf("[stub][orders] status updated order_id=%s status=%s", order.ID, order.Status)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.store.DeleteOrder(c.Param("id")); err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListChecklist(c *gin.Context) {
	items, err := h.store.ListChecklist(c.Param("orderId"))
	if err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AddChecklistItem(c *gin.Context) {
	var body struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	item, err := h.store.AddChecklistItem(c.Param("orderId"), body.Title)
	if err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) ToggleChecklistItem(c *gin.Context) {
	item, err := h.store.ToggleChecklistItem(c.Param("id"))
	if err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteChecklistItem(c *gin.Context) {
	if err := h.store.DeleteChecklistItem(c.Param("id")); err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadPhoto accepts the multipart body the client sends: a `file` part plus
// an `orderId` field.
func (h *Handler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "missing file", http.StatusBadRequest))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("UPLOAD_FAILED", "could not read file", http.StatusBadRequest))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("UPLOAD_FAILED", "could not read file", http.StatusBadRequest))
		return
	}

	photo, err := h.store.AddPhoto(c.Param("orderId"), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	log.Printf("[stub][photos] uploaded photo_id=%s order_id=%s size=%d", photo.ID, photo.OrderID, photo.Size)

	c.JSON(http.StatusCreated, photo)
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	if err := h.store.DeletePhoto(c.Param("id")); err != nil {
		respondError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ServeUpload(c *gin.Context) {
	data, ok := h.store.PhotoBytes(c.Param("filename"))
	if !ok {
		respondError(c, pkg.NewDomainErrorSimple("PHOTO_NOT_FOUND", "Photo not found", http.StatusNotFound))
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}

func respondError(c *gin.Context, appErr *pkg.DomainError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapStoreError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, ErrChecklistNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_NOT_FOUND", "Checklist item not found", http.StatusNotFound)
	case errors.Is(err, ErrPhotoNotFound):
		return pkg.NewDomainErrorSimple("PHOTO_NOT_FOUND", "Photo not found", http.StatusNotFound)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL", "Internal error", http.StatusInternalServerError)
	}
}
