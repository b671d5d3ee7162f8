package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/mock"
	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/internal/utils"
	"github.com/sgalab/sga-server/models"
)

func TestAuditService_Record_AttributesPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mock.NewMockAuditRepository(ctrl)
	svc := service.NewAuditService(mockAudit, logger.Nop())

	principal := models.Principal{UserID: 7, Username: "john", RoleName: models.RoleAdmin}
	ctx := context.WithValue(context.Background(), utils.PrincipalCtxKey, principal)

	mockAudit.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.AuditEntry) error {
			require.NotNil(t, entry.UserID)
			assert.Equal(t, int64(7), *entry.UserID)
			return nil
		})

	svc.Record(ctx, models.AuditEntry{
		Action:     "FILE_UPLOADED",
		EntityType: models.AuditEntityFile,
	})
}

func TestAuditService_Record_SwallowsInsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mock.NewMockAuditRepository(ctrl)
	svc := service.NewAuditService(mockAudit, logger.Nop())
	ctx := context.Background()

	mockAudit.EXPECT().
		Insert(ctx, gomock.Any()).
		Return(errors.New("insert failed"))

	// must not panic or propagate
	svc.Record(ctx, models.AuditEntry{Action: "LOGIN_FAILED", EntityType: models.AuditEntityAuthentication})
}

func TestAuditService_List_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mock.NewMockAuditRepository(ctrl)
	svc := service.NewAuditService(mockAudit, logger.Nop())
	ctx := context.Background()

	mockAudit.EXPECT().
		List(ctx, service.DefaultAuditListLimit).
		Return([]models.AuditEntry{}, nil)

	entries, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
