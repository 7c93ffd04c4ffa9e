package health

import (
	"context"
	"fmt"
	"time"

	"github.com/foooood/storefront/internal/catalog"
	"github.com/foooood/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

func NewHealthHandler(cfg *config.Config, cat *catalog.Catalog) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "catalog",
			Timeout:   time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if len(cat.Areas()) == 0 {
					return fmt.Errorf("catalog has no areas loaded")
				}

				if len(cat.Restaurants(catalog.RestaurantQuery{})) == 0 {
					return fmt.Errorf("catalog has no restaurants loaded")
				}

				return nil
			},
		},
	}

	if cfg.Session.Enabled {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.Session.Redis.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
