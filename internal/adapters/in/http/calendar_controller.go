package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-calendar-engine/internal/config"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/ports/in"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/ports/out"
	"github.com/suchimauz/clinic-calendar-engine/internal/utils"
)

type CalendarController struct {
	useCase    in.CalendarUseCase
	dataSource out.DataSourcePort
	cfg        *config.Config
}

func NewCalendarController(useCase in.CalendarUseCase, dataSource out.DataSourcePort, cfg *config.Config) *CalendarController {
	return &CalendarController{
		useCase:    useCase,
		dataSource: dataSource,
		cfg:        cfg,
	}
}

func (c *CalendarController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/doctors", c.listDoctors)
		api.GET("/doctors/:doctorId/availability", c.doctorAvailability)
		api.GET("/calendar/:doctorId/day", c.dayView)
		api.GET("/calendar/:doctorId/week", c.weekView)
		api.GET("/slots", c.slots)
	}
}

// Параметр date не обязателен, по умолчанию текущая дата
func (c *CalendarController) parseDateParam(ctx *gin.Context) (time.Time, bool) {
	dateParam := ctx.Query("date")
	if dateParam == "" {
		return time.Now(), true
	}

	date, err := utils.ParseDate(dateParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return time.Time{}, false
	}

	return date, true
}

func (c *CalendarController) listDoctors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"doctors": c.dataSource.ListDoctors(ctx.Request.Context()),
	})
}

func (c *CalendarController) doctorAvailability(ctx *gin.Context) {
	doctor, exists := c.dataSource.GetDoctor(ctx.Request.Context(), ctx.Param("doctorId"))
	if !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	date, ok := c.parseDateParam(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"doctorId":     doctor.ID,
		"date":         date.Format("2006-01-02"),
		"working":      c.useCase.IsDoctorWorking(*doctor, date),
		"workingHours": c.useCase.DoctorWorkingHours(*doctor, date),
	})
}

func (c *CalendarController) dayView(ctx *gin.Context) {
	doctorID := ctx.Param("doctorId")

	if _, exists := c.dataSource.GetDoctor(ctx.Request.Context(), doctorID); !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	date, ok := c.parseDateParam(ctx)
	if !ok {
		return
	}

	view, debugInfo, err := c.useCase.GetDayView(ctx.Request.Context(), doctorID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"view": view}
	if c.cfg.IsLocal() {
		response["debug"] = debugInfo
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *CalendarController) weekView(ctx *gin.Context) {
	doctorID := ctx.Param("doctorId")

	if _, exists := c.dataSource.GetDoctor(ctx.Request.Context(), doctorID); !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	date, ok := c.parseDateParam(ctx)
	if !ok {
		return
	}

	view, debugInfo, err := c.useCase.GetWeekView(ctx.Request.Context(), doctorID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"view": view}
	if c.cfg.IsLocal() {
		response["debug"] = debugInfo
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *CalendarController) slots(ctx *gin.Context) {
	date, ok := c.parseDateParam(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"slots": c.useCase.GenerateSlots(date),
	})
}

func (c *CalendarController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
