package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/woliveira1728/os-system-frontend/internal/config"
	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
	"github.com/woliveira1728/os-system-frontend/internal/infrastructure/api"
	"github.com/woliveira1728/os-system-frontend/internal/infrastructure/camera"
	"github.com/woliveira1728/os-system-frontend/internal/infrastructure/localstore"
	"github.com/woliveira1728/os-system-frontend/internal/usecase"
)

const usageText = `Usage: osclient <command> [args]

Session:
  login <email> <password>
  register <name> <email> <password>
  logout
  whoami

Orders:
  orders list
  orders get <id>
  orders create <title> <description> [priority]
  orders update <id> <title> <description>
  orders status <id> <status>
  orders delete <id>

Checklist:
  checklist list <orderId>
  checklist add <orderId> <title>
  checklist toggle <itemId>
  checklist delete <itemId>

Photos:
  photo upload <orderId> <file>
  photo capture <orderId>
  photo delete <orderId> <photoId>
`

type app struct {
	cfg      config.Config
	sessions usecase.ISessionUseCase
	orders   usecase.IOrdersUseCase
	photos   usecase.IPhotoUseCase
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	cfg := config.Load()
	store, err := localstore.Open(cfg.StateDir)
	if err != nil {
		fatalf("open state dir %s: %v", cfg.StateDir, err)
	}
	defer store.Close()

	gateway := api.NewClient(cfg.APIBaseURL, store)
	sessions := usecase.NewSessionUseCase(gateway, store)
	gateway.SetUnauthorizedHook(sessions.HandleUnauthorized)
	orders := usecase.NewOrdersUseCase(gateway)
	opener := camera.NewOpener(cfg.CameraDevice, cfg.CameraFallbackDevice)
	photos := usecase.NewPhotoUseCase(gateway, orders, opener)

	sessions.Restore()

	a := &app{cfg: cfg, sessions: sessions, orders: orders, photos: photos}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fatalf("%v", err)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		a.sessions.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.whoami()
	case "orders":
		return a.ordersCmd(ctx, args)
	case "checklist":
		return a.checklistCmd(ctx, args)
	case "photo":
		return a.photoCmd(ctx, args)
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return nil
	default:
		return fmt.Errorf("unknown command %q (try: osclient help)", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: osclient login <email> <password>")
	}
	if err := a.sessions.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	user, _ := a.sessions.Current()
	fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: osclient register <name> <email> <password>")
	}
	if err := a.sessions.Register(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}
	fmt.Printf("registered %s, now log in\n", args[1])
	return nil
}

func (a *app) whoami() error {
	user, ok := a.sessions.Current()
	if !ok {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func (a *app) requireSession() error {
	if _, ok := a.sessions.Current(); !ok {
		return fmt.Errorf("not logged in (run: osclient login <email> <password>)")
	}
	return nil
}

func (a *app) ordersCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: osclient orders <list|get|create|update|status|delete> ...")
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		a.orders.RefreshOrders(ctx)
		list := a.orders.Orders()
		if len(list) == 0 {
			fmt.Println("no orders")
			return nil
		}
		for _, o := range list {
			fmt.Printf("%s  %-12s %-8s %s\n", o.ID, o.Status, o.Priority, o.Title)
		}
		return nil
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: osclient orders get <id>")
		}
		order, err := a.orders.GetOrder(ctx, args[1])
		if err != nil {
			return err
		}
		printOrder(order, a.cfg.APIOrigin())
		return nil
	case "create":
		if len(args) < 3 {
			return fmt.Errorf("usage: osclient orders create <title> <description> [priority]")
		}
		data := entities.CreateOrderData{Title: args[1], Description: args[2]}
		if len(args) > 3 {
			data.Priority = entities.PriorityLevel(args[3])
		}
		if err := a.orders.CreateOrder(ctx, data); err != nil {
			return err
		}
		fmt.Println("order created")
		return nil
	case "update":
		if len(args) != 4 {
			return fmt.Errorf("usage: osclient orders update <id> <title> <description>")
		}
		order, err := a.orders.UpdateOrder(ctx, args[1], entities.CreateOrderData{Title: args[2], Description: args[3]})
		if err != nil {
			return err
		}
		printOrder(order, a.cfg.APIOrigin())
		return nil
	case "status":
		if len(args) != 3 {
			return fmt.Errorf("usage: osclient orders status <id> <status>")
		}
		if err := a.orders.UpdateOrderStatus(ctx, args[1], entities.OrderStatus(args[2])); err != nil {
			return err
		}
		fmt.Println("status updated")
		return nil
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: osclient orders delete <id>")
		}
		if err := a.orders.DeleteOrder(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("order deleted")
		return nil
	default:
		return fmt.Errorf("unknown orders subcommand %q", args[0])
	}
}

func (a *app) checklistCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: osclient checklist <list|add|toggle|delete> ...")
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		if len(args) != 2 {
			return fmt.Errorf("usage: osclient checklist list <orderId>")
		}
		items, err := a.orders.FetchChecklist(ctx, args[1])
		if err != nil {
			return err
		}
		printChecklist(items)
		return nil
	case "add":
		if len(args) != 3 {
			return fmt.Errorf("usage: osclient checklist add <orderId> <title>")
		}
		if err := a.orders.AddChecklistItem(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("item added")
		return nil
	case "toggle":
		if len(args) != 2 {
			return fmt.Errorf("usage: osclient checklist toggle <itemId>")
		}
		if err := a.orders.ToggleChecklistItem(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("item toggled")
		return nil
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: osclient checklist delete <itemId>")
		}
		if err := a.orders.DeleteChecklistItem(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("item deleted")
		return nil
	default:
		return fmt.Errorf("unknown checklist subcommand %q", args[0])
	}
}

func (a *app) photoCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: osclient photo <upload|capture|delete> ...")
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	switch args[0] {
	case "upload":
		if len(args) != 3 {
			return fmt.Errorf("usage: osclient photo upload <orderId> <file>")
		}
		f, err := os.Open(args[2])
		if err != nil {
			return err
		}
		defer f.Close()
		order, err := a.photos.UploadPhoto(ctx, args[1], filepath.Base(args[2]), f)
		if err != nil {
			return err
		}
		fmt.Printf("uploaded, order now has %d photo(s)\n", len(order.Photos))
		return nil
	case "capture":
		if len(args) != 2 {
			return fmt.Errorf("usage: osclient photo capture <orderId>")
		}
		if err := a.photos.OpenCamera(ctx); err != nil {
			return err
		}
		order, err := a.photos.CaptureAndUpload(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("captured, order now has %d photo(s)\n", len(order.Photos))
		return nil
	case "delete":
		if len(args) != 3 {
			return fmt.Errorf("usage: osclient photo delete <orderId> <photoId>")
		}
		order, err := a.photos.DeletePhoto(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("deleted, order now has %d photo(s)\n", len(order.Photos))
		return nil
	default:
		return fmt.Errorf("unknown photo subcommand %q", args[0])
	}
}

func printOrder(order entities.Order, origin string) {
	fmt.Printf("%s  %s\n", order.ID, order.Title)
	fmt.Printf("  status=%s priority=%s created=%s\n", order.Status, order.Priority, order.CreatedAt.Format(time.RFC3339))
	if order.Description != "" {
		fmt.Printf("  %s\n", order.Description)
	}
	if len(order.Checklist) > 0 {
		fmt.Println("  checklist:")
		printChecklist(order.Checklist)
	}
	for _, p := range order.Photos {
		if src := p.DisplayURL(origin); src != "" {
			fmt.Printf("  photo %s  %s\n", p.ID, src)
		}
	}
}

func printChecklist(items []entities.ChecklistItem) {
	for _, item := range items {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %s  %s\n", mark, item.ID, item.Title)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "osclient: "+format+"\n", args...)
	os.Exit(1)
}
