package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// resource adapts one CRUDService to the create/read/update/delete/getAll routes. Create
// binds the body into a draft E and update binds it into changes C.
type resource[E any, C any, B any] struct {
	service   CRUDService[E, C]
	toDraft   func(B) (E, error)
	toChanges func(B) (C, error)
	toBody    func(E) B
}

func registerCRUD[E any, C any, B any](
	g *echo.Group,
	service CRUDService[E, C],
	toDraft func(B) (E, error),
	toChanges func(B) (C, error),
	toBody func(E) B,
) {
	r := resource[E, C, B]{service: service, toDraft: toDraft, toChanges: toChanges, toBody: toBody}
	g.POST("/create", r.create)
	g.GET("/read/:id", r.read)
	g.PUT("/update/:id", r.update)
	g.DELETE("/delete/:id", r.delete)
	g.GET("/getAll", r.getAll)
}

func (r resource[E, C, B]) create(c echo.Context) error {
	draft, err := r.bindDraft(c)
	if err != nil {
		return err
	}

	created, err := r.service.Create(c.Request().Context(), draft)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r.toBody(created))
}

func (r resource[E, C, B]) read(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	entity, err := r.service.Read(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.toBody(entity))
}

func (r resource[E, C, B]) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body B
	if err = c.Bind(&body); err != nil {
		return err
	}
	changes, err := r.toChanges(body)
	if err != nil {
		return err
	}

	updated, err := r.service.Update(c.Request().Context(), id, changes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.toBody(updated))
}

func (r resource[E, C, B]) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err = r.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r resource[E, C, B]) getAll(c echo.Context) error {
	entities, err := r.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(entities, r.toBody))
}

func (r resource[E, C, B]) bindDraft(c echo.Context) (E, error) {
	var body B
	if err := c.Bind(&body); err != nil {
		var zero E
		return zero, err
	}
	return r.toDraft(body)
}

func mapAll[E any, B any](entities []E, toBody func(E) B) []B {
	bodies := make([]B, len(entities))
	for i, e := range entities {
		bodies[i] = toBody(e)
	}
	return bodies
}
