package servers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reusee/turing/descs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/runners"
	"github.com/reusee/turing/tmconfigs"
)

const maxBodyBytes = 1 << 20

type Handler http.Handler

func (Module) Handler(
	run runners.Run,
	registry runners.Registry,
	maxIterations tmconfigs.MaxIterations,
	logger logs.Logger,
) Handler {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(middleware.Recover())

	engine.POST("/run", func(c echo.Context) error {
		var options []runners.Option

		switch mode := c.QueryParam("mode"); mode {
		case "", "normal":
		case "by-step":
			options = append(options, runners.WithMode(machines.ModeByStep))
		default:
			return writeError(c, http.StatusBadRequest, "bad mode: "+mode)
		}
		if str := c.QueryParam("max_iterations"); str != "" {
			n, err := strconv.Atoi(str)
			if err != nil {
				return writeError(c, http.StatusBadRequest, "bad max_iterations: "+str)
			}
			if n < 1 || n > int(maxIterations) {
				return writeError(c, http.StatusBadRequest,
					fmt.Sprintf("max_iterations out of range [1, %d]: %d", maxIterations, n))
			}
			options = append(options, runners.WithMaxIterations(n))
		}
		if str := c.QueryParam("initial_state"); str != "" {
			options = append(options, runners.WithInitialState(machines.ParseState(str)))
		}

		req := c.Request()
		desc, err := descs.Decode(http.MaxBytesReader(c.Response(), req.Body, maxBodyBytes), descs.FormatJSON)
		if err != nil {
			return writeError(c, http.StatusBadRequest, err.Error())
		}

		result, err := run(req.Context(), desc, options...)
		if errors.Is(err, descs.ErrInvalidDescription) {
			return writeError(c, http.StatusBadRequest, err.Error())
		} else if err != nil {
			return writeError(c, http.StatusUnprocessableEntity, err.Error())
		}

		if err := c.JSON(http.StatusOK, result); err != nil {
			logger.WarnContext(req.Context(), "write response", "error", err)
		}
		return nil
	})

	engine.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	engine.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok\n")
	})

	return engine
}

func writeError(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{
		"error": msg,
	})
}
