package devops

import (
	"context"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// TenantEntry maps a dashboard hostname to its database schema. The
// registry lives in SSM as a yaml document so new tenants can be onboarded
// without a deploy.
type TenantEntry struct {
	Hostname string `yaml:"hostname"`
	Schema   string `yaml:"schema"`
}

type TenantRegistry struct {
	Tenants []TenantEntry `yaml:"tenants"`
}

var (
	once     sync.Once
	registry []TenantEntry
	loadErr  error
)

func LoadTenantRegistry(ctx context.Context) ([]TenantEntry, error) {
	once.Do(func() {
		paramName := "worksight/tenants"

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(cfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed TenantRegistry
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		registry = parsed.Tenants
	})

	return registry, loadErr
}

// SchemaForHostname looks a hostname up in the registry. An empty result
// means the caller should fall back to hostname-derived schema naming.
func SchemaForHostname(ctx context.Context, hostname string) (string, error) {
	entries, err := LoadTenantRegistry(ctx)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if entry.Hostname == hostname {
			return entry.Schema, nil
		}
	}
	return "", nil
}
