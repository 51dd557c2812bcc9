package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// Envelope is the body of every successful JSON response.
type Envelope struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Meta      any    `json:"meta,omitempty"`
	RequestID string `json:"request_id"`
}

// Error is the body of every failed JSON response.
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id"`
}

// RequestID prefers the id set by the requestid middleware over the inbound header.
func RequestID(c *fiber.Ctx) string {
	rid := c.GetRespHeader(fiber.HeaderXRequestID)
	return lo.Ternary(rid != "", rid, c.Get(fiber.HeaderXRequestID))
}

func respond(c *fiber.Ctx, status int, data, meta any) error {
	return c.Status(status).JSON(Envelope{
		Code:      "OK",
		Message:   "success",
		Data:      data,
		Meta:      meta,
		RequestID: RequestID(c),
	})
}

func fail(c *fiber.Ctx, status int, code, msg string, details any) error {
	return c.Status(status).JSON(Error{Code: code, Message: msg, Details: details, RequestID: RequestID(c)})
}

func OK(c *fiber.Ctx, data any) error { return respond(c, fiber.StatusOK, data, nil) }

func Created(c *fiber.Ctx, data any) error { return respond(c, fiber.StatusCreated, data, nil) }

// List sends one page of results with its paging metadata.
func List(c *fiber.Ctx, items any, meta PageMeta) error {
	return respond(c, fiber.StatusOK, items, meta)
}
