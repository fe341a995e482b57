package resource

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// CreateGuard runs after a create payload has been decoded and before the row
// is persisted. Returning an error aborts the create with no write.
type CreateGuard func(st Store, attrs map[string]any) error

// CreateHook runs after a row has been persisted, inside the same transaction.
// Returning an error rolls the create back.
type CreateHook func(st Store, created Entity) error

// Controller serves the uniform CRUD and relationship-listing operations for
// one entity type. All five entity types share this one implementation; the
// Schema and Store injected at construction are the only per-type parts.
type Controller struct {
	schema *Schema
	store  Store
	guards []CreateGuard
	hooks  []CreateHook
}

// Option customizes a Controller.
type Option func(*Controller)

// WithCreateGuard adds a pre-persist check to the create operation.
func WithCreateGuard(g CreateGuard) Option {
	return func(ct *Controller) { ct.guards = append(ct.guards, g) }
}

// WithCreateHook adds a post-persist step to the create operation.
func WithCreateHook(h CreateHook) Option {
	return func(ct *Controller) { ct.hooks = append(ct.hooks, h) }
}

// NewController builds the controller for one entity type.
func NewController(sc *Schema, st Store, opts ...Option) *Controller {
	ct := &Controller{schema: sc, store: st}
	for _, opt := range opts {
		opt(ct)
	}
	return ct
}

// List godoc
// @Summary      List all resources of a type
// @Description  Returns every instance as a JSON array of {id, type, attributes} envelopes.
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} object
// @Router       /{resource} [get]
func (ct *Controller) List(c *gin.Context) {
	entities, err := ct.store.SelectAll(ct.schema.TypeTag)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, EncodeAll(ct.schema, entities))
}

// GetOne godoc
// @Summary      Get a single resource by id
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} object
// @Failure      404 {object} ErrorResponse "Resource not found"
// @Router       /{resource}/{id} [get]
func (ct *Controller) GetOne(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entity, err := ct.store.Get(ct.schema.TypeTag, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Encode(ct.schema, entity))
}

// Create godoc
// @Summary      Create a resource
// @Description  Decodes and validates the payload, then persists a new row. The response echoes the attributes and carries the assigned id.
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} object
// @Failure      400 {object} ErrorResponse
// @Router       /{resource} [post]
func (ct *Controller) Create(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	attrs, err := Decode(raw, ct.schema, ct.store, ModeCreate, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	var created Entity
	err = ct.store.Transaction(func(tx Store) error {
		for _, g := range ct.guards {
			if err := g(tx, attrs); err != nil {
				return err
			}
		}

		entity, err := tx.Create(ct.schema.TypeTag, attrs)
		if err != nil {
			return err
		}

		for _, h := range ct.hooks {
			if err := h(tx, entity); err != nil {
				return err
			}
		}

		created = entity
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Encode(ct.schema, created))
}

// Update godoc
// @Summary      Update a resource
// @Description  Applies the payload's attributes to an existing row. The payload must claim the same id and type as the resource being updated.
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} object
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Resource not found"
// @Router       /{resource}/{id} [patch]
func (ct *Controller) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := ct.store.Get(ct.schema.TypeTag, id)
	if err != nil {
		respondError(c, err)
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	attrs, err := Decode(raw, ct.schema, ct.store, ModeUpdate, existing.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := ct.store.Update(existing, attrs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, Encode(ct.schema, updated))
}

// Delete godoc
// @Summary      Delete a resource
// @Description  Removes a row. Deleting an id that does not exist still succeeds.
// @Security     BearerAuth
// @Success      204
// @Router       /{resource}/{id} [delete]
func (ct *Controller) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ct.store.Delete(ct.schema.TypeTag, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Related godoc
// @Summary      List a related collection
// @Description  Returns the rows related to one owning resource, typed with the related entity's tag.
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} object
// @Failure      404 {object} ErrorResponse "Owner not found"
// @Router       /{resource}/{id}/{relation} [get]
func (ct *Controller) Related(relation string) gin.HandlerFunc {
	rel, ok := ct.schema.Relationship(relation)
	if !ok {
		panic("resource: schema " + ct.schema.TypeTag + " has no relationship " + relation)
	}
	relatedSchema := Schemas[rel.Target]

	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		owner, err := ct.store.Get(ct.schema.TypeTag, id)
		if err != nil {
			respondError(c, err)
			return
		}

		related, err := ct.store.Related(owner, relation)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, EncodeAll(relatedSchema, related))
	}
}

// pathID reads the :id path parameter. Identifiers are integers; anything else
// is treated as a route to a resource that cannot exist.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the core error taxonomy to HTTP statuses: missing rows
// are 404, every validation failure is 400, anything else is a 500.
func respondError(c *gin.Context, err error) {
	if re, ok := AsError(err); ok {
		status := http.StatusBadRequest
		if re.Kind == KindResourceNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": re.Message})
		return
	}

	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
