package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/go-mall/internal/model"
)

func TestAddressOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice", model.RoleUser)
	carol := env.seedUser(t, "carol", model.RoleUser)

	addr, err := env.addressSvc.CreateAddress(ctx, CreateAddressInput{
		Street:     "Main St 1",
		City:       "Springfield",
		State:      "SP",
		PostalCode: "12345",
	}, alice)
	require.NoError(t, err)

	got, err := env.addressSvc.GetAddressByID(ctx, addr.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.UserID)

	// 他人的地址：存在但归属不符报 Forbidden
	_, err = env.addressSvc.GetAddressByID(ctx, addr.ID, carol)
	assert.ErrorIs(t, err, ErrForbidden)

	// 不存在报 NotFound
	_, err = env.addressSvc.GetAddressByID(ctx, uuid.New().String(), alice)
	assert.ErrorIs(t, err, ErrNotFound)

	// 删除同样受归属校验
	err = env.addressSvc.DeleteAddress(ctx, addr.ID, carol)
	assert.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, env.addressSvc.DeleteAddress(ctx, addr.ID, alice))

	addrs, err := env.addressSvc.ListAddresses(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, addrs)
}
