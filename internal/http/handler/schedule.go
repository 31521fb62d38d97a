package handler

import (
	"github.com/gofiber/fiber/v2"

	"coachapi/internal/service"
)

// CreateSchedule adds a class-schedule entry.
func CreateSchedule(svc service.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ScheduleInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sched, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sched)
	}
}

// ListSchedules returns the public schedule board. No ordering is guaranteed.
func ListSchedules(svc service.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheds, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(scheds)
	}
}

// DeleteSchedule removes a schedule entry by id.
func DeleteSchedule(svc service.ScheduleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Schedule deleted successfully"})
	}
}
