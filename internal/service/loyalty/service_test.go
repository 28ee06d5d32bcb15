package loyalty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
	loyaltyRepo "github.com/agendasis/AgendaSIS-BookingService/internal/infra/storage/loyalty"
)

type mockLoyaltyRepo struct {
	points    int
	getErr    error
	redeemErr error
}

func (m *mockLoyaltyRepo) GetPoints(_ context.Context, _ int64) (int, error) {
	return m.points, m.getErr
}

func (m *mockLoyaltyRepo) RedeemPoints(_ context.Context, _ int64, points int) (int, error) {
	if m.redeemErr != nil {
		return 0, m.redeemErr
	}
	m.points -= points
	return m.points, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetSummary(t *testing.T) {
	tests := []struct {
		name                  string
		points                int
		availableDiscounts    int
		pointsForNextDiscount int
	}{
		{"empty account", 0, 0, 100},
		{"below first discount", 70, 0, 30},
		{"exactly one discount", 100, 1, 100},
		{"two and a half discounts", 250, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockLoyaltyRepo{points: tt.points}, nopLogger{})

			summary, err := svc.GetSummary(context.Background(), 7, domain.Actor{UserID: 7, Role: domain.RoleClient})

			require.NoError(t, err)
			assert.Equal(t, tt.points, summary.Points)
			assert.Equal(t, tt.availableDiscounts, summary.AvailableDiscounts)
			assert.Equal(t, tt.pointsForNextDiscount, summary.PointsForNextDiscount)
			assert.Equal(t, domain.LoyaltyDiscountPercent, summary.DiscountPercent)
		})
	}
}

func TestGetSummary_Permissions(t *testing.T) {
	svc := NewService(&mockLoyaltyRepo{points: 50}, nopLogger{})

	// Клиент не видит чужой счёт
	_, err := svc.GetSummary(context.Background(), 7, domain.Actor{UserID: 8, Role: domain.RoleClient})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Персонал видит любой счёт
	_, err = svc.GetSummary(context.Background(), 7, domain.Actor{UserID: 8, Role: domain.RoleBarber})
	assert.NoError(t, err)
}

func TestRedeem(t *testing.T) {
	repo := &mockLoyaltyRepo{points: 150}
	svc := NewService(repo, nopLogger{})

	remaining, err := svc.Redeem(context.Background(), 7, domain.Actor{UserID: 7, Role: domain.RoleClient})

	require.NoError(t, err)
	assert.Equal(t, 50, remaining)
}

func TestRedeem_InsufficientPoints(t *testing.T) {
	repo := &mockLoyaltyRepo{points: 40, redeemErr: loyaltyRepo.ErrInsufficientPoints}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Redeem(context.Background(), 7, domain.Actor{UserID: 7, Role: domain.RoleClient})

	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestRedeem_OnlyOwnAccount(t *testing.T) {
	svc := NewService(&mockLoyaltyRepo{points: 500}, nopLogger{})

	// Даже персонал не списывает чужие баллы
	_, err := svc.Redeem(context.Background(), 7, domain.Actor{UserID: 8, Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
