package schema_registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Aleph-Alpha/schema-transfer/internal/lru"
	"github.com/Aleph-Alpha/schema-transfer/v1/observability"
)

// Client is the default implementation of Registry
// that communicates with Confluent Schema Registry over HTTP.
type Client struct {
	urls       []string
	httpClient *http.Client

	// Cache for parsed schemas by ID
	schemaCache *lru.Cache[int, *ParsedSchema]

	// Cache for schema IDs by subject and canonical schema
	idCache *lru.Cache[string, int]

	// Authentication
	username string
	password string

	// logger is used for structured logging (optional)
	logger Logger

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer
}

// NewClient creates a new schema registry client
// Returns the concrete *Client type.
//
// Example:
//
//	registry, err := schema_registry.NewClient(schema_registry.Config{
//	    URLs: []string{"http://localhost:8081"},
//	    BasicAuth: schema_registry.BasicAuth{
//	        CredentialsSource: schema_registry.CredentialsSourceUserInfo,
//	        UserInfo:          "user:pass",
//	    },
//	})
func NewClient(config Config) (*Client, error) {
	config = applyDefaults(config)

	if len(config.URLs) == 0 {
		return nil, fmt.Errorf("schema registry URL is required")
	}

	username, password, err := resolveCredentials(config.BasicAuth)
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(config.URLs))
	for i, u := range config.URLs {
		urls[i] = strings.TrimRight(u, "/")
	}

	return &Client{
		urls: urls,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		schemaCache: lru.New[int, *ParsedSchema](config.CacheCapacity),
		idCache:     lru.New[string, int](config.CacheCapacity),
		username:    username,
		password:    password,
	}, nil
}

// applyDefaults fills in default values for any unset configuration fields.
func applyDefaults(config Config) Config {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.CacheCapacity == 0 {
		config.CacheCapacity = DefaultCacheCapacity
	}
	if config.BasicAuth.CredentialsSource == "" {
		config.BasicAuth.CredentialsSource = CredentialsSourceURL
	}
	return config
}

// resolveCredentials extracts the basic-auth username and password according
// to the configured credentials source. With the URL source the credentials
// stay embedded in the endpoint URLs and no explicit header is set here.
func resolveCredentials(auth BasicAuth) (string, string, error) {
	switch auth.CredentialsSource {
	case CredentialsSourceURL:
		return "", "", nil
	case CredentialsSourceUserInfo:
		if auth.UserInfo == "" {
			return "", "", nil
		}
		username, password, ok := strings.Cut(auth.UserInfo, ":")
		if !ok {
			return "", "", fmt.Errorf("basic auth user info must have the form username:password")
		}
		return username, password, nil
	default:
		return "", "", fmt.Errorf("unknown basic auth credentials source %q", auth.CredentialsSource)
	}
}

// WithObserver sets the observer for this client and returns the client for
// method chaining. The observer is notified of every registry operation.
//
// Example:
//
//	registry = registry.WithObserver(metrics.NewObserver(m))
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for
// method chaining. The logger is used for structured logging of lifecycle
// events.
//
// Example:
//
//	registry = registry.WithObserver(myObserver).WithLogger(myLogger)
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// logInfo logs an informational message using the configured logger if available.
func (c *Client) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.InfoWithContext(ctx, msg, nil, fields)
	}
	// Silently skip if no logger configured
}

// logWarn logs a warning message using the configured logger if available.
func (c *Client) logWarn(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.WarnWithContext(ctx, msg, nil, fields)
	}
	// Silently skip if no logger configured
}
