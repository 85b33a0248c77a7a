//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/worldloom/worldloom/core"
	"github.com/worldloom/worldloom/x/character"
	"github.com/worldloom/worldloom/x/item"
	"github.com/worldloom/worldloom/x/location"
	"github.com/worldloom/worldloom/x/world"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("client")

// Client is a typed view of the REST API. Mutating calls carry the bearer
// token the client was constructed with; reads work without one.
type Client interface {
	ListPublicWorlds(ctx context.Context) ([]core.World, error)
	ListMyWorlds(ctx context.Context) ([]core.World, error)
	GetWorld(ctx context.Context, id string) (core.World, error)
	CreateWorld(ctx context.Context, draft world.Draft) (core.World, error)
	UpdateWorld(ctx context.Context, id string, patch world.Patch) (core.World, error)
	DeleteWorld(ctx context.Context, id string) error

	ListCharacters(ctx context.Context, worldID string) ([]core.Character, error)
	GetCharacter(ctx context.Context, id string) (core.Character, error)
	CreateCharacter(ctx context.Context, draft character.Draft) (core.Character, error)
	UpdateCharacter(ctx context.Context, id string, patch character.Patch) (core.Character, error)
	DeleteCharacter(ctx context.Context, id string) error

	ListLocations(ctx context.Context, worldID string) ([]core.Location, error)
	GetLocation(ctx context.Context, id string) (core.Location, error)
	CreateLocation(ctx context.Context, draft location.Draft) (core.Location, error)
	UpdateLocation(ctx context.Context, id string, patch location.Patch) (core.Location, error)
	DeleteLocation(ctx context.Context, id string) error

	ListItems(ctx context.Context, worldID string) ([]core.Item, error)
	GetItem(ctx context.Context, id string) (core.Item, error)
	CreateItem(ctx context.Context, draft item.Draft) (core.Item, error)
	UpdateItem(ctx context.Context, id string, patch item.Patch) (core.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

type client struct {
	base  string
	token string
}

// NewClient returns a client for the API rooted at base. The token may be
// empty for anonymous reads.
func NewClient(base, token string) Client {
	return &client{
		base:  strings.TrimSuffix(base, "/"),
		token: token,
	}
}

func (c *client) request(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var buf io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpClient := new(http.Client)
	httpClient.Timeout = defaultTimeout
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode >= 400 {
		return nil, apiError(resp.StatusCode, body)
	}

	return body, nil
}

// apiError turns an error response into the matching core error so the
// caller can react the same way whether the check ran locally or remotely.
func apiError(status int, body []byte) error {
	var validation core.ValidationResponse
	if json.Unmarshal(body, &validation) == nil && len(validation.Errors) > 0 {
		return core.NewErrorValidation(validation.Errors...)
	}

	var message core.MessageResponse
	if json.Unmarshal(body, &message) == nil && message.Msg != "" {
		switch status {
		case http.StatusNotFound:
			return core.NewErrorNotFound(strings.TrimSuffix(message.Msg, " not found"))
		case http.StatusUnauthorized, http.StatusForbidden:
			return core.NewErrorPermissionDenied()
		case http.StatusConflict:
			return core.NewErrorAlreadyExists()
		default:
			return fmt.Errorf("api error: %s", message.Msg)
		}
	}

	return fmt.Errorf("api error: %s", http.StatusText(status))
}

func get[T any](c *client, ctx context.Context, span string, path string) (T, error) {
	var result T
	ctx, s := tracer.Start(ctx, span)
	defer s.End()

	body, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		s.RecordError(err)
		return result, err
	}

	err = json.Unmarshal(body, &result)
	if err != nil {
		s.RecordError(err)
		return result, errors.Wrap(err, "failed to unmarshal response")
	}

	return result, nil
}

func send[T any](c *client, ctx context.Context, span, method, path string, payload any) (T, error) {
	var result T
	ctx, s := tracer.Start(ctx, span)
	defer s.End()

	body, err := c.request(ctx, method, path, payload)
	if err != nil {
		s.RecordError(err)
		return result, err
	}

	err = json.Unmarshal(body, &result)
	if err != nil {
		s.RecordError(err)
		return result, errors.Wrap(err, "failed to unmarshal response")
	}

	return result, nil
}

func (c *client) remove(ctx context.Context, span, path string) error {
	ctx, s := tracer.Start(ctx, span)
	defer s.End()

	_, err := c.request(ctx, http.MethodDelete, path, nil)
	if err != nil {
		s.RecordError(err)
		return err
	}

	return nil
}

func (c *client) ListPublicWorlds(ctx context.Context) ([]core.World, error) {
	return get[[]core.World](c, ctx, "Client.ListPublicWorlds", "/api/worlds")
}

func (c *client) ListMyWorlds(ctx context.Context) ([]core.World, error) {
	return get[[]core.World](c, ctx, "Client.ListMyWorlds", "/api/worlds/user")
}

func (c *client) GetWorld(ctx context.Context, id string) (core.World, error) {
	return get[core.World](c, ctx, "Client.GetWorld", "/api/worlds/"+id)
}

func (c *client) CreateWorld(ctx context.Context, draft world.Draft) (core.World, error) {
	return send[core.World](c, ctx, "Client.CreateWorld", http.MethodPost, "/api/worlds", draft)
}

func (c *client) UpdateWorld(ctx context.Context, id string, patch world.Patch) (core.World, error) {
	return send[core.World](c, ctx, "Client.UpdateWorld", http.MethodPut, "/api/worlds/"+id, patch)
}

func (c *client) DeleteWorld(ctx context.Context, id string) error {
	return c.remove(ctx, "Client.DeleteWorld", "/api/worlds/"+id)
}

func (c *client) ListCharacters(ctx context.Context, worldID string) ([]core.Character, error) {
	return get[[]core.Character](c, ctx, "Client.ListCharacters", "/api/characters/world/"+worldID)
}

func (c *client) GetCharacter(ctx context.Context, id string) (core.Character, error) {
	return get[core.Character](c, ctx, "Client.GetCharacter", "/api/characters/"+id)
}

func (c *client) CreateCharacter(ctx context.Context, draft character.Draft) (core.Character, error) {
	return send[core.Character](c, ctx, "Client.CreateCharacter", http.MethodPost, "/api/characters", draft)
}

func (c *client) UpdateCharacter(ctx context.Context, id string, patch character.Patch) (core.Character, error) {
	return send[core.Character](c, ctx, "Client.UpdateCharacter", http.MethodPut, "/api/characters/"+id, patch)
}

func (c *client) DeleteCharacter(ctx context.Context, id string) error {
	return c.remove(ctx, "Client.DeleteCharacter", "/api/characters/"+id)
}

func (c *client) ListLocations(ctx context.Context, worldID string) ([]core.Location, error) {
	return get[[]core.Location](c, ctx, "Client.ListLocations", "/api/locations/world/"+worldID)
}

func (c *client) GetLocation(ctx context.Context, id string) (core.Location, error) {
	return get[core.Location](c, ctx, "Client.GetLocation", "/api/locations/"+id)
}

func (c *client) CreateLocation(ctx context.Context, draft location.Draft) (core.Location, error) {
	return send[core.Location](c, ctx, "Client.CreateLocation", http.MethodPost, "/api/locations", draft)
}

func (c *client) UpdateLocation(ctx context.Context, id string, patch location.Patch) (core.Location, error) {
	return send[core.Location](c, ctx, "Client.UpdateLocation", http.MethodPut, "/api/locations/"+id, patch)
}

func (c *client) DeleteLocation(ctx context.Context, id string) error {
	return c.remove(ctx, "Client.DeleteLocation", "/api/locations/"+id)
}

func (c *client) ListItems(ctx context.Context, worldID string) ([]core.Item, error) {
	return get[[]core.Item](c, ctx, "Client.ListItems", "/api/items/world/"+worldID)
}

func (c *client) GetItem(ctx context.Context, id string) (core.Item, error) {
	return get[core.Item](c, ctx, "Client.GetItem", "/api/items/"+id)
}

func (c *client) CreateItem(ctx context.Context, draft item.Draft) (core.Item, error) {
	return send[core.Item](c, ctx, "Client.CreateItem", http.MethodPost, "/api/items", draft)
}

func (c *client) UpdateItem(ctx context.Context, id string, patch item.Patch) (core.Item, error) {
	return send[core.Item](c, ctx, "Client.UpdateItem", http.MethodPut, "/api/items/"+id, patch)
}

func (c *client) DeleteItem(ctx context.Context, id string) error {
	return c.remove(ctx, "Client.DeleteItem", "/api/items/"+id)
}
