package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateComplaint handles POST /api/v1/complaints/create.
func (s *Server) CreateComplaint(c echo.Context) error {
	var body NewComplaintBody
	if err := c.Bind(&body); err != nil {
		return err
	}

	created, err := s.services.Complaints.Create(c.Request().Context(), body.Description, body.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, complaintBody(created))
}

func (s *Server) ReadComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	found, err := s.services.Complaints.Read(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaintBody(found))
}

func (s *Server) UpdateComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var body ComplaintBody
	if err = c.Bind(&body); err != nil {
		return err
	}
	changes, err := body.draft()
	if err != nil {
		return err
	}

	updated, err := s.services.Complaints.Update(c.Request().Context(), id, changes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaintBody(updated))
}

func (s *Server) DeleteComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err = s.services.Complaints.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetAllComplaints(c echo.Context) error {
	all, err := s.services.Complaints.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(all, complaintBody))
}

// RespondToComplaint handles POST /api/v1/complaints/respond/:id and resolves the complaint.
func (s *Server) RespondToComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var body ComplaintResponseBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	resolved, err := s.services.Complaints.RespondToComplaint(c.Request().Context(), id, body.Response)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaintBody(resolved))
}

func (s *Server) GetComplaintsByCustomerID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	complaints, err := s.services.Complaints.GetComplaintsByCustomerID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(complaints, complaintBody))
}

func (s *Server) GetComplaintsByCustomerEmail(c echo.Context) error {
	email, err := pathEmail(c)
	if err != nil {
		return err
	}

	complaints, err := s.services.Complaints.GetComplaintsByCustomerEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(complaints, complaintBody))
}
