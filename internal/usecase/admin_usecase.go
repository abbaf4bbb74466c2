package usecase

import (
	"bytes"
	"context"
	"fmt"

	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

const (
	defaultRecentUsers = 10
	maxRecentUsers     = 100
)

type adminUsecase struct {
	repo        domain.AdminRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
	audit       *security.SecurityLogger
}

func NewAdminUsecase(repo domain.AdminRepository, profileRepo domain.ProfileRepository, validate *validator.Validate, audit *security.SecurityLogger) domain.AdminUsecase {
	return &adminUsecase{
		repo:        repo,
		profileRepo: profileRepo,
		validate:    validate,
		audit:       audit,
	}
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	stats, err := u.repo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	stats.CompletionRate = domain.CompletionRate(int(stats.CompletedMicroGoals), int(stats.TotalMicroGoals))
	return stats, nil
}

func (u *adminUsecase) RecentUsers(ctx context.Context, limit int) ([]domain.AdminUserRow, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecentUsers
	}
	if limit > maxRecentUsers {
		limit = maxRecentUsers
	}
	users, err := u.repo.ListUsers(ctx, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

func (u *adminUsecase) ExportUsers(ctx context.Context, adminID string) ([]byte, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	users, err := u.repo.ListUsers(ctx, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	data, err := exportUsersExcel(users)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	u.audit.LogDataExport(ctx, adminID, len(users))
	return data, nil
}

func (u *adminUsecase) AssignRole(ctx context.Context, adminID, userID, role string) (*domain.Profile, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateInput(u.validate, domain.RoleInput{Role: role}); err != nil {
		return nil, err
	}
	if adminID == userID && role != domain.RoleAdmin {
		return nil, apperror.BadRequest("No puedes quitarte el rol de administrador")
	}

	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, msgProfileNotFound)
	}
	if err := u.profileRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, repoError(err, msgProfileNotFound)
	}
	profile.Role = role

	u.audit.LogRoleModified(ctx, adminID, profile.Email, role)
	return profile, nil
}

// requireAdmin re-checks the role the auth middleware put in the context.
func requireAdmin(ctx context.Context) error {
	if domain.RoleFromContext(ctx) != domain.RoleAdmin {
		return apperror.Forbidden("Se requiere rol de administrador")
	}
	return nil
}

var exportColumns = []string{
	"ID", "EMAIL", "NOMBRE", "ROL", "ONBOARDING", "OBJETIVOS ANUALES",
	"METAS SEMANALES", "METAS COMPLETADAS", "TASA DE CUMPLIMIENTO (%)", "ALTA",
}

// exportUsersExcel generates an Excel file with one row per user
func exportUsersExcel(users []domain.AdminUserRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Usuarios"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, name := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, user := range users {
		name := ""
		if user.FullName != nil {
			name = *user.FullName
		}
		onboarding := "NO"
		if user.OnboardingCompleted {
			onboarding = "SÍ"
		}
		values := []any{
			user.ID, user.Email, name, user.Role, onboarding, user.MacroGoals,
			user.MicroGoals, user.CompletedMicroGoals,
			domain.CompletionRate(int(user.CompletedMicroGoals), int(user.MicroGoals)),
			user.CreatedAt.Format("2006-01-02"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
