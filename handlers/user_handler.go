package handlers

import (
	"context"

	"github.com/anjiri1684/precision_martial/middleware"
	"github.com/anjiri1684/precision_martial/models"
	"github.com/anjiri1684/precision_martial/utils"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.InsertResult, error)
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := parseBody(c, &user); err != nil {
		return err
	}
	user.ID = primitive.NilObjectID
	user.Role = ""

	result, err := h.users.Create(c.UserContext(), &user)
	if err != nil {
		return serverError(c, err, "Failed to create user")
	}
	return c.JSON(result)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return serverError(c, err, "Failed to fetch users")
	}
	return c.JSON(users)
}

func (h *UserHandler) ListInstructors(c *fiber.Ctx) error {
	users, err := h.users.ListByRole(c.UserContext(), models.RoleInstructor)
	if err != nil {
		return serverError(c, err, "An error occurred while fetching instructors")
	}
	return c.JSON(users)
}

// GetUserByEmail answers null when no user matches.
func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	user, err := h.users.FindByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return serverError(c, err, "Failed to fetch user")
	}
	return c.JSON(user)
}

func (h *UserHandler) CheckAdmin(c *fiber.Ctx) error {
	return h.checkRole(c, models.RoleAdmin)
}

func (h *UserHandler) CheckInstructor(c *fiber.Ctx) error {
	return h.checkRole(c, models.RoleInstructor)
}

// checkRole answers {<role>: bool} for the caller's own email only; asking
// about someone else short-circuits to false.
func (h *UserHandler) checkRole(c *fiber.Ctx, role string) error {
	email := c.Params("email")
	if middleware.DecodedEmail(c) != email {
		return c.JSON(fiber.Map{role: false})
	}

	user, err := h.users.FindByEmail(c.UserContext(), email)
	if err != nil {
		return serverError(c, err, "Failed to fetch user")
	}
	return c.JSON(fiber.Map{role: user != nil && user.Role == role})
}

func (h *UserHandler) MakeAdmin(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleAdmin)
}

func (h *UserHandler) MakeInstructor(c *fiber.Ctx) error {
	return h.setRole(c, models.RoleInstructor)
}

func (h *UserHandler) setRole(c *fiber.Ctx, role string) error {
	id, err := utils.ParseObjectID(c.Params("id"))
	if err != nil {
		return errInvalidID
	}

	result, err := h.users.SetRole(c.UserContext(), id, role)
	if err != nil {
		return serverError(c, err, "Failed to update user role")
	}
	return c.JSON(result)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"))
	if err != nil {
		return errInvalidID
	}

	result, err := h.users.Delete(c.UserContext(), id)
	if err != nil {
		return serverError(c, err, "Failed to delete user")
	}
	return c.JSON(result)
}
