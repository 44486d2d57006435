package schema_registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const contentType = "application/vnd.schemaregistry.v1+json"

// GetSchemaByID retrieves a schema from the registry by its ID.
// Results are cached, so repeated lookups of the same ID do not hit the
// registry again.
func (c *Client) GetSchemaByID(ctx context.Context, id int) (*ParsedSchema, error) {
	// Check cache first
	if schema, ok := c.schemaCache.Get(id); ok {
		return schema, nil
	}

	var result struct {
		Schema string `json:"schema"`
		Type   string `json:"schemaType"`
	}

	start := time.Now()
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/schemas/ids/%d", id), nil, &result)
	c.observeOperation("get_schema_by_id", strconv.Itoa(id), time.Since(start), err, int64(len(result.Schema)))
	if err != nil {
		return nil, err
	}

	schema, err := ParseSchema(result.Schema, result.Type)
	if err != nil {
		return nil, err
	}

	// Cache the schema
	c.schemaCache.Put(id, schema)

	return schema, nil
}

// GetLatestSchema retrieves the latest version of a schema for a subject.
func (c *Client) GetLatestSchema(ctx context.Context, subject string) (*Metadata, error) {
	var metadata Metadata

	start := time.Now()
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/subjects/%s/versions/latest", url.PathEscape(subject)), nil, &metadata)
	c.observeOperation("get_latest_schema", subject, time.Since(start), err, int64(len(metadata.Schema)))
	if err != nil {
		return nil, err
	}

	metadata.Subject = subject

	// Cache the schema under its ID for subsequent GetSchemaByID calls
	schema, err := ParseSchema(metadata.Schema, metadata.Type)
	if err != nil {
		return nil, err
	}
	c.schemaCache.Put(metadata.ID, schema)

	return &metadata, nil
}

// RegisterSchema registers a schema under a subject and returns the ID the
// registry assigned to it. Registering a schema that is already known under
// the subject returns the existing ID. Successful registrations are cached
// by subject and canonical schema text.
func (c *Client) RegisterSchema(ctx context.Context, subject string, schema *ParsedSchema) (int, error) {
	// Check cache first
	cacheKey := subject + ":" + schema.Type() + ":" + schema.Schema()
	if id, ok := c.idCache.Get(cacheKey); ok {
		return id, nil
	}

	payload := map[string]interface{}{
		"schema": schema.Schema(),
	}
	if schema.Type() != TypeAvro {
		payload["schemaType"] = schema.Type()
	}

	var result struct {
		ID int `json:"id"`
	}

	start := time.Now()
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/subjects/%s/versions", url.PathEscape(subject)), payload, &result)
	c.observeOperation("register_schema", subject, time.Since(start), err, int64(len(schema.Schema())))
	if err != nil {
		return 0, err
	}

	// Cache the ID
	c.idCache.Put(cacheKey, result.ID)

	return result.ID, nil
}

// CheckCompatibility checks if a schema is compatible with the latest version
// registered under a subject.
func (c *Client) CheckCompatibility(ctx context.Context, subject string, schema *ParsedSchema) (bool, error) {
	payload := map[string]interface{}{
		"schema": schema.Schema(),
	}
	if schema.Type() != TypeAvro {
		payload["schemaType"] = schema.Type()
	}

	var result struct {
		IsCompatible bool `json:"is_compatible"`
	}

	start := time.Now()
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/compatibility/subjects/%s/versions/latest", url.PathEscape(subject)), payload, &result)
	c.observeOperation("check_compatibility", subject, time.Since(start), err, 0)
	if err != nil {
		return false, err
	}

	return result.IsCompatible, nil
}

// do performs a request against the registry, failing over to the next
// configured URL when one is unreachable. An error response from a reachable
// registry is authoritative: it is returned immediately without trying the
// remaining URLs.
func (c *Client) do(ctx context.Context, method, path string, payload, result interface{}) error {
	var lastErr error

	for i, base := range c.urls {
		err := c.doOnce(ctx, method, base+path, payload, result)
		if err == nil {
			return nil
		}

		var restErr *RestError
		if errors.As(err, &restErr) {
			return err
		}

		lastErr = err
		if i < len(c.urls)-1 {
			c.logWarn(ctx, "Schema registry endpoint unreachable, failing over", map[string]interface{}{
				"url":   base,
				"error": err.Error(),
			})
		}
	}

	return lastErr
}

// doOnce performs a single request against one registry endpoint.
func (c *Client) doOnce(ctx context.Context, method, requestURL string, payload, result interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	req.Header.Set("Accept", contentType)
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach schema registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return parseRestError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// parseRestError converts a non-200 response into a *RestError, falling back
// to the raw body when the registry did not answer with its JSON error shape.
func parseRestError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	restErr := &RestError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, restErr); err != nil || restErr.Message == "" {
		restErr.Message = strings.TrimSpace(string(body))
	}

	return restErr
}
