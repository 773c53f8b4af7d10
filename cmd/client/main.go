// Command client is a smoke tool for a running shop API: it prints the
// sitemap, logs in, and dumps users and products.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shop-api/internal/adapter"
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprintf(os.Stderr, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())

	log := logger.NewConsoleLogger("go-shop-client", "info")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	shop, err := adapter.NewHTTPShopAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create shop adapter")
	}

	if err = run(context.Background(), shop, cfg.Credentials, log); err != nil {
		log.Fatal().Err(err).Msg("smoke run failed")
	}
}

func run(ctx context.Context, shop adapter.ShopAdapter, creds config.ClientCredentials, log *logger.Logger) error {
	sitemap, err := shop.Sitemap(ctx)
	if err != nil {
		return fmt.Errorf("sitemap: %w", err)
	}
	log.Info().Int("routes", len(sitemap.Routes)).Msg("sitemap received")

	if _, err = shop.Login(ctx, creds.UserName, creds.Email); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	log.Info().Str("user_name", creds.UserName).Msg("logged in")

	users, err := shop.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	for _, u := range users {
		if u.UserName != creds.UserName {
			continue
		}
		me, err := shop.GetUser(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("get user %d: %w", u.ID, err)
		}
		if err = printJSON("me", me); err != nil {
			return err
		}
	}

	products, err := shop.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	if err = printJSON("users", users); err != nil {
		return err
	}
	return printJSON("products", products)
}

func printJSON(title string, v any) error {
	fmt.Printf("== %s ==\n", title)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
