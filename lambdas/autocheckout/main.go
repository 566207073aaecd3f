package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"gorm.io/gorm"

	"worksight.com/worksight/core"
	"worksight.com/worksight/infrastructure/communication"
	"worksight.com/worksight/lambdas/autocheckout/helper"
)

// AutoCheckoutEvent selects which tenant schemas to process. Nil tenants
// means all of them.
type AutoCheckoutEvent struct {
	Tenants *[]string `json:"tenants"`
	DryRun  bool      `json:"dryRun"`
}

func HandleRequest(ctx context.Context, event AutoCheckoutEvent) (map[string]helper.Stats, error) {
	eventJson, _ := json.Marshal(event)
	fmt.Printf("[INFO] Event: %s\n", string(eventJson))

	dsn := os.Getenv("WORKSIGHT_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("WORKSIGHT_DSN not set")
	}

	dm, err := core.New(dsn, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	dm.LogLevel = core.LogLevelError
	defer dm.Close()

	var tenants []string
	if event.Tenants == nil {
		fmt.Printf("[INFO] No tenants provided, fetching all tenants...\n")
		tenants, err = dm.GetAllTenants(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get tenants: %w", err)
		}
	} else {
		tenants = *event.Tenants
	}

	now := time.Now().UTC()
	results := make(map[string]helper.Stats)

	for _, tenant := range tenants {
		fmt.Printf("[INFO] Processing tenant: %s\n", tenant)
		err := dm.Exec(ctx, tenant, func(db *gorm.DB) error {
			stats, err := helper.CloseOpenSessions(db, now, event.DryRun)
			if err != nil {
				return err
			}
			results[tenant] = stats
			return nil
		})
		if err != nil {
			fmt.Printf("[ERROR] tenant %s: %v\n", tenant, err)
			continue
		}
	}

	if slack := communication.ConnectSlack(); slack != nil {
		totalClosed := 0
		for _, stats := range results {
			totalClosed += stats.Closed
		}
		_ = slack.Info(fmt.Sprintf("auto-checkout closed %d sessions across %d tenants (dryRun=%v)",
			totalClosed, len(results), event.DryRun))
	}

	fmt.Printf("[INFO] Finished auto-checkout\n")
	return results, nil
}

func main() {
	lambda.Start(HandleRequest)
}
