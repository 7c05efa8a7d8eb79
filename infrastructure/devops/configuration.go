package devops

import (
	"context"
	"fmt"
	"net"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"syncronic.com/empmonitor/utils"
)

type DBEntry struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// GetParameterAPI is the part of *ssm.Client used here.
type GetParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func NewSSMClient(ctx context.Context, region string) (*ssm.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// LoadDBConfig reads a yaml list of database entries from an encrypted SSM parameter.
func LoadDBConfig(ctx context.Context, client GetParameterAPI, paramName string) ([]DBEntry, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get parameter %s: %w", paramName, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return nil, fmt.Errorf("parameter %s is empty", paramName)
	}

	var parsed []DBEntry
	if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	return parsed, nil
}

// ResolveDSN looks up the entry called name and builds a DSN for driver.
func ResolveDSN(ctx context.Context, client GetParameterAPI, paramName, name, driver string) (string, error) {
	databases, err := LoadDBConfig(ctx, client, paramName)
	if err != nil {
		return "", err
	}

	entry := utils.Find(databases, func(db DBEntry) bool {
		return strings.EqualFold(db.Name, name)
	})
	if entry == nil {
		return "", fmt.Errorf("database %q not found in parameter %s", name, paramName)
	}
	return entry.DSN(driver)
}

func (db DBEntry) DSN(driver string) (string, error) {
	switch driver {
	case "mysql":
		host := db.Host
		if !strings.Contains(host, ":") {
			host = host + ":3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			db.Username, db.Password, host, db.Name), nil
	case "postgres":
		host, port := db.Host, "5432"
		if h, p, err := net.SplitHostPort(db.Host); err == nil {
			host, port = h, p
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=require",
			host, port, db.Username, db.Password, db.Name), nil
	default:
		return "", fmt.Errorf("driver %q cannot be configured from SSM", driver)
	}
}
