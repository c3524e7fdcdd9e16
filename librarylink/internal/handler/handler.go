package handler

import (
	"net/http"

	"github.com/Astemirdum/library-link/librarylink/internal/errs"
	"github.com/Astemirdum/library-link/pkg/auth"
	mw "github.com/Astemirdum/library-link/pkg/middleware"
	_ "github.com/Astemirdum/library-link/swagger"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Handler struct {
	dispatcher  *Dispatcher
	defaultUser string
	log         *zap.Logger
}

func New(svc LinkService, defaultUser string, log *zap.Logger) *Handler {
	return &Handler{
		dispatcher:  NewDispatcher(svc, log),
		defaultUser: defaultUser,
		log:         log,
	}
}

func (h *Handler) Dispatcher() *Dispatcher {
	return h.dispatcher
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, auth.XUserNameHeader},
	}))

	base := e.Group("", mw.NewRateLimiter(rate.Limit(baseRPS)))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(rate.Limit(apiRPS)),
		mw.UserName(h.defaultUser),
	)
	api.POST("/messages", h.Message)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Message godoc
// @Summary      Send a message
// @Description  Runs one action and returns its reply. Refusals come back as 200 with success=false.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        X-User-Name  header  string   false  "user name"
// @Param        message      body    Message  true   "message envelope"
// @Success      200  {object}  Status
// @Failure      400  {object}  errs.ValidationErrorResponse
// @Failure      500  {object}  echo.HTTPError
// @Router       /api/v1/messages [post]
func (h *Handler) Message(c echo.Context) error {
	var msg Message
	if err := c.Bind(&msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	reply, err := h.dispatcher.Dispatch(ctx, userName, msg)
	if err != nil {
		var verr validator.ValidationErrors
		switch {
		case errors.As(err, &verr):
			resp := errs.ValidationErrorResponse{Message: "invalid message"}
			resp.Errors.AdditionalProperties = verr.Error()
			return c.JSON(http.StatusBadRequest, resp)
		case errs.IsInvalid(err):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			h.log.Error("dispatch", zap.String("action", msg.Action), zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, reply)
}
