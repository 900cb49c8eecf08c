package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/SscSPs/dual_currency_display/internal/dto"
	"github.com/SscSPs/dual_currency_display/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// adminHandler handles the administrative currency operations.
type adminHandler struct {
	adminService    portssvc.AdminSvc
	settingsService portssvc.SettingsReaderSvc
	backupService   portssvc.BackupReaderSvc
}

func newAdminHandler(as portssvc.AdminSvc, ss portssvc.SettingsReaderSvc, bs portssvc.BackupReaderSvc) *adminHandler {
	return &adminHandler{
		adminService:    as,
		settingsService: ss,
		backupService:   bs,
	}
}

// registerAdminRoutes registers the administrative routes on an already authenticated group.
func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services.Admin, services.Settings, services.Backup)

	admin := rg.Group("/admin")
	{
		admin.GET("/settings", h.getSettings)
		admin.PUT("/exchange-rate", h.updateRate)
		admin.PUT("/dual-display", h.toggleDualDisplay)
		admin.POST("/migrations", h.runMigration)
		admin.POST("/restore", h.runRestore)
		admin.GET("/backups/currencies", h.listBackupCurrencies)
		admin.GET("/backups/export", h.exportBackups)
	}
}

// getSettings godoc
// @Summary Current store settings
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/settings [get]
func (h *adminHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateRate godoc
// @Summary Update the BGN/EUR exchange rate
// @Tags admin
// @Accept json
// @Produce json
// @Param rate body dto.UpdateExchangeRateRequest true "New rate, BGN per 1 EUR"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/exchange-rate [put]
func (h *adminHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid exchange rate"})
		return
	}
	middleware.SetEventProperty(c, "rate", req.Rate)

	settings, err := h.adminService.UpdateRate(c.Request.Context(), req)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to update exchange rate", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Failed to update exchange rate"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Exchange rate updated", slog.String("rate", settings.Rate.String()))
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// toggleDualDisplay godoc
// @Summary Enable or disable the secondary currency display
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.ToggleDualDisplayRequest true "Desired state"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dual-display [put]
func (h *adminHandler) toggleDualDisplay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ToggleDualDisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	middleware.SetEventProperty(c, "enabled", *req.Enabled)

	settings, err := h.adminService.ToggleDualDisplay(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to toggle dual display", slog.String("error", err.Error()))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// runMigration godoc
// @Summary Convert every catalog price into the other currency
// @Description Optionally backs up prices first and switches the active currency afterwards.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.RunMigrationRequest true "Migration options"
// @Success 200 {object} dto.AdminResultResponse
// @Failure 400 {object} dto.AdminResultResponse
// @Failure 500 {object} dto.AdminResultResponse
// @Security BearerAuth
// @Router /admin/migrations [post]
func (h *adminHandler) runMigration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RunMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AdminResultResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received migration request", slog.String("direction", req.Direction), slog.Bool("backup_first", req.BackupFirst))
	middleware.SetEventProperty(c, "direction", req.Direction)
	middleware.SetEventProperty(c, "backup_first", req.BackupFirst)
	middleware.SetEventProperty(c, "switch_active_currency", req.SwitchActiveCurrency)
	result, err := h.adminService.RunMigration(c.Request.Context(), req)
	resp := dto.AdminResultResponse{Details: result}
	if result != nil {
		resp.Count = result.Migration.Count
		resp.ElapsedSeconds = result.Migration.ElapsedSeconds
		resp.Error = result.Migration.Error
		middleware.SetEventProperty(c, "count", resp.Count)
		middleware.SetEventProperty(c, "overwritten_originals", result.Migration.OverwrittenOriginals)
		middleware.SetEventProperty(c, "backup_rows", backupRows(result))
	}
	if err != nil {
		if resp.Error == "" {
			resp.Error = err.Error()
		}
		c.JSON(statusForError(err), resp)
		return
	}

	resp.Message = fmt.Sprintf("Conversion completed. %d items updated in %.2f seconds.", resp.Count, resp.ElapsedSeconds)
	c.JSON(http.StatusOK, resp)
}

// runRestore godoc
// @Summary Restore prices from the backup log
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.RestoreRequest true "Target currency and dual display flag"
// @Success 200 {object} dto.AdminResultResponse
// @Failure 400 {object} dto.AdminResultResponse
// @Failure 500 {object} dto.AdminResultResponse
// @Security BearerAuth
// @Router /admin/restore [post]
func (h *adminHandler) runRestore(c *gin.Context) {
	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AdminResultResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	middleware.SetEventProperty(c, "currency", req.Currency)
	middleware.SetEventProperty(c, "enable_dual_display", req.EnableDualDisplay)

	start := time.Now()
	result, err := h.adminService.RunRestore(c.Request.Context(), req)
	resp := dto.AdminResultResponse{
		ElapsedSeconds: decimal.NewFromFloat(time.Since(start).Seconds()).Round(2).InexactFloat64(),
		Details:        result,
	}
	if result != nil {
		resp.Count = result.Count
		middleware.SetEventProperty(c, "count", resp.Count)
	}
	if err != nil {
		resp.Error = err.Error()
		c.JSON(statusForError(err), resp)
		return
	}

	resp.Message = fmt.Sprintf("Prices have been restored! %d price values reverted.", resp.Count)
	c.JSON(http.StatusOK, resp)
}

// listBackupCurrencies godoc
// @Summary Currencies present in the backup log
// @Tags admin
// @Produce json
// @Success 200 {object} dto.BackupCurrenciesResponse
// @Security BearerAuth
// @Router /admin/backups/currencies [get]
func (h *adminHandler) listBackupCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.backupService.BackupCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list backup currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list backup currencies"})
		return
	}

	resp := dto.BackupCurrenciesResponse{Currencies: make([]string, 0, len(currencies))}
	for _, cur := range currencies {
		resp.Currencies = append(resp.Currencies, cur.String())
	}
	c.JSON(http.StatusOK, resp)
}

// exportBackups godoc
// @Summary Download the backup log as an XLSX workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Security BearerAuth
// @Router /admin/backups/export [get]
func (h *adminHandler) exportBackups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var buf bytes.Buffer
	if err := h.backupService.ExportBackup(c.Request.Context(), &buf); err != nil {
		logger.Error("Failed to export backup log", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup log"})
		return
	}

	filename := fmt.Sprintf("price-backups-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func backupRows(result *domain.AdminRunResult) int {
	if result == nil || result.Backup == nil {
		return 0
	}
	return result.Backup.Rows
}
