package handlers

import (
	"context"

	"github.com/anjiri1684/precision_martial/models"
	"github.com/anjiri1684/precision_martial/utils"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) (*models.InsertResult, error)
	ListByStudent(ctx context.Context, email string) ([]models.Enrollment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type EnrollmentHandler struct {
	enrollments EnrollmentStore
}

func NewEnrollmentHandler(enrollments EnrollmentStore) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

func (h *EnrollmentHandler) CreateEnrollment(c *fiber.Ctx) error {
	var enrollment models.Enrollment
	if err := parseBody(c, &enrollment); err != nil {
		return err
	}
	enrollment.ID = primitive.NilObjectID

	result, err := h.enrollments.Create(c.UserContext(), &enrollment)
	if err != nil {
		return serverError(c, err, "Failed to enroll")
	}
	return c.JSON(result)
}

func (h *EnrollmentHandler) ListStudentEnrollments(c *fiber.Ctx) error {
	enrollments, err := h.enrollments.ListByStudent(c.UserContext(), c.Params("email"))
	if err != nil {
		return serverError(c, err, "Failed to fetch enrolled classes")
	}
	return c.JSON(enrollments)
}

func (h *EnrollmentHandler) GetEnrollment(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"))
	if err != nil {
		return errInvalidID
	}

	enrollment, err := h.enrollments.FindByID(c.UserContext(), id)
	if err != nil {
		return serverError(c, err, "Failed to fetch enrolled class")
	}
	return c.JSON(enrollment)
}

// DeleteEnrollment reports deletedCount 0 for unknown ids rather than failing.
func (h *EnrollmentHandler) DeleteEnrollment(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"))
	if err != nil {
		return errInvalidID
	}

	result, err := h.enrollments.Delete(c.UserContext(), id)
	if err != nil {
		return serverError(c, err, "Failed to delete enrolled class")
	}
	return c.JSON(result)
}
