package kit

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/quote"
)

func TestOKEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return OK(c, fiber.Map{"x": 1})
	})
	req := httptest.NewRequest("GET", "/t", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request err: %v", err)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "OK" || body["message"] != "success" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	data := body["data"].(map[string]any)
	if int(data["x"].(float64)) != 1 {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestListPaging(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/l", func(c *fiber.Ctx) error {
		pg, err := ParsePaging(c)
		if err != nil {
			return err
		}
		return List(c, []int{1, 2}, OffsetMeta(pg, 2, 5))
	})

	res, err := app.Test(httptest.NewRequest("GET", "/l?limit=500&offset=1", nil))
	if err != nil {
		t.Fatalf("request err: %v", err)
	}
	var body struct {
		Meta PageMeta `json:"meta"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Meta.Limit != 100 || *body.Meta.NextOffset != 3 || !body.Meta.HasMore || *body.Meta.Total != 5 {
		t.Fatalf("unexpected meta: %+v", body.Meta)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/l?offset=-1", nil))
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative offset: status=%d", res.StatusCode)
	}
}

func TestErrorHandlerMapsDomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{&quote.ValidationError{Field: "length", Message: "must be positive"}, http.StatusBadRequest, "E_INVALID_PARAM"},
		{&quote.NotFoundError{Kind: "item", ID: "i1"}, http.StatusNotFound, "E_NOT_FOUND"},
		{&quote.DataIntegrityError{ItemID: "i1", MaterialID: "gone"}, http.StatusConflict, "E_DATA_INTEGRITY"},
		{quote.Persistence("save items", errors.New("conn reset")), http.StatusServiceUnavailable, "E_PERSISTENCE"},
		{fmt.Errorf("load: %w", quote.ErrForbidden), http.StatusForbidden, "E_FORBIDDEN"},
		{ConfirmationRequired("confirm"), http.StatusBadRequest, "E_CONFIRMATION_REQUIRED"},
		{fiber.ErrUnauthorized, http.StatusUnauthorized, "E_UNAUTHORIZED"},
		{errors.New("boom"), http.StatusInternalServerError, "E_INTERNAL"},
	}
	for _, tc := range cases {
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		app.Get("/e", func(c *fiber.Ctx) error { return tc.err })
		res, err := app.Test(httptest.NewRequest("GET", "/e", nil))
		if err != nil {
			t.Fatalf("request err: %v", err)
		}
		var body map[string]any
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.StatusCode != tc.status || body["code"] != tc.code {
			t.Fatalf("%v: got %d %v, want %d %s", tc.err, res.StatusCode, body["code"], tc.status, tc.code)
		}
	}
}
