package handlers

import (
	"context"

	"github.com/anjiri1684/precision_martial/models"
	"github.com/anjiri1684/precision_martial/utils"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassStore interface {
	Create(ctx context.Context, class *models.Class) (*models.InsertResult, error)
	List(ctx context.Context) ([]models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]models.Class, error)
	ListByStatus(ctx context.Context, status models.ClassStatus) ([]models.Class, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (*models.UpdateResult, error)
	UpsertFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*models.UpdateResult, error)
	Upsert(ctx context.Context, id primitive.ObjectID, fields models.ClassUpdate) (*models.UpdateResult, error)
}

type ClassHandler struct {
	classes ClassStore
}

func NewClassHandler(classes ClassStore) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// CreateClass always files new classes as pending, whatever the body says.
func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	var class models.Class
	if err := parseBody(c, &class); err != nil {
		return err
	}
	class.ID = primitive.NilObjectID
	class.Status = models.ClassPending

	result, err := h.classes.Create(c.UserContext(), &class)
	if err != nil {
		return serverError(c, err, "Failed to create class")
	}
	return c.JSON(result)
}

func (h *ClassHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.classes.List(c.UserContext())
	if err != nil {
		return serverError(c, err, "Failed to fetch classes")
	}
	return c.JSON(classes)
}

func (h *ClassHandler) ListApprovedClasses(c *fiber.Ctx) error {
	classes, err := h.classes.ListByStatus(c.UserContext(), models.ClassApproved)
	if err != nil {
		return serverError(c, err, "An error occurred while fetching classes")
	}
	return c.JSON(classes)
}

func (h *ClassHandler) ListInstructorClasses(c *fiber.Ctx) error {
	classes, err := h.classes.ListByInstructor(c.UserContext(), c.Params("email"))
	if err != nil {
		return serverError(c, err, "Failed to fetch classes")
	}
	return c.JSON(classes)
}

// GetClass shares its path with ListInstructorClasses; anything that is not
// an ObjectID is handed on to the next matching route.
func (h *ClassHandler) GetClass(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"))
	if err != nil {
		return c.Next()
	}

	class, err := h.classes.FindByID(c.UserContext(), id)
	if err != nil {
		return serverError(c, err, "Failed to fetch class")
	}
	return c.JSON(class)
}

func (h *ClassHandler) ApproveClass(c *fiber.Ctx) error {
	return h.setStatus(c, models.ClassApproved)
}

func (h *ClassHandler) DenyClass(c *fiber.Ctx) error {
	return h.setStatus(c, models.ClassDenied)
}

func (h *ClassHandler) setStatus(c *fiber.Ctx, status models.ClassStatus) error {
	id, err := utils.ParseObjectID(c.Params("id"))
	if err != nil {
		return errInvalidID
	}

	result, err := h.classes.SetStatus(c.UserContext(), id, status)
	if err != nil {
		return serverError(c, err, "Failed to update class status")
	}
	return c.JSON(result)
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
}

func (h *ClassHandler) UpsertFeedback(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"))
	if err != nil {
		return errInvalidID
	}
	var req feedbackRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.classes.UpsertFeedback(c.UserContext(), id, req.Feedback)
	if err != nil {
		return serverError(c, err, "Failed to save feedback")
	}
	return c.JSON(result)
}

func (h *ClassHandler) UpdateClass(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"))
	if err != nil {
		return errInvalidID
	}
	var fields models.ClassUpdate
	if err := parseBody(c, &fields); err != nil {
		return err
	}

	result, err := h.classes.Upsert(c.UserContext(), id, fields)
	if err != nil {
		return serverError(c, err, "Failed to update class")
	}
	return c.JSON(result)
}
