package main

import (
	"fmt"
	"os"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/api"
	"storefront/internal/infra/store"
	"storefront/internal/notify"
	"storefront/internal/transport"
	"storefront/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CLI全体で共有する部品
type app struct {
	cfg      config.Config
	log      *zap.Logger
	notifier *notify.Center
	session  *usecase.CartSession
	cartID   model.CartID

	authUC    *usecase.AuthUsecase
	cartUC    *usecase.CartUsecase
	catalogUC *usecase.CatalogUsecase
	orderUC   *usecase.OrderUsecase
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "storefront cart client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.printNotifications()
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.AddCommand(
		newCartCmd(a),
		newProductsCmd(a),
		newOrderCmd(a),
		newAuthCmd(a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// DIの組み立て。部品はここで全部つなぐ。
func (a *app) init(cmd *cobra.Command) error {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.GoEnv == "prod" {
		a.log, err = zap.NewProduction()
	} else {
		a.log, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.StateDBPath)
	if err != nil {
		return err
	}
	state := store.NewStateGormStore(db)

	ctx := cmd.Context()

	//カートIDの払い出し（初回だけ生成・保存）
	identityUC := usecase.NewIdentityUsecase(state)
	cartID, err := identityUC.CartID(ctx)
	if err != nil {
		return err
	}
	a.cartID = cartID

	a.authUC = usecase.NewAuthUsecase(state)
	shopper := a.authUC.CurrentShopper(ctx)

	tc := transport.New(cfg.APIBaseURL, transport.DefaultRetryPolicy(), a.log)

	a.notifier = notify.NewCenter(a.log)
	a.session = usecase.NewCartSession()

	a.cartUC = usecase.NewCartUsecase(
		api.NewCartAPIClient(tc),
		a.session,
		a.notifier,
		a.log,
		cartID,
		shopper,
		usecase.CartConfig{Country: cfg.ShipCountry},
	)
	a.catalogUC = usecase.NewCatalogUsecase(api.NewCatalogAPIClient(tc))
	a.orderUC = usecase.NewOrderUsecase(api.NewOrderAPIClient(tc), a.notifier, a.log)

	return nil
}

// たまった通知をstderrへ
func (a *app) printNotifications() {
	if a.notifier == nil {
		return
	}
	for _, n := range a.notifier.Active() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Severity, n.Message)
	}
}
