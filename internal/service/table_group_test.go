package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/kitchenpos/internal/events"
	"github.com/Skotchmaster/kitchenpos/internal/models"
)

func TestTableGroupService_CreateTableGroup(t *testing.T) {
	f := newFixture(t)
	t1, t2 := f.table(0, true), f.table(0, true)

	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, eventOfType(events.TypeTableGroupCreated)).Return(nil).Once()
	svc := NewTableGroupService(f.repo, pub)

	group, err := svc.CreateTableGroup(f.ctx, []uint{t1.ID, t2.ID})
	require.NoError(t, err)
	assert.NotZero(t, group.ID)
	assert.False(t, group.CreatedDate.IsZero())
	assert.Equal(t, []uint{t1.ID, t2.ID}, group.TableIDs())
	pub.AssertExpectations(t)

	for _, id := range []uint{t1.ID, t2.ID} {
		stored := f.reload(id)
		assert.False(t, stored.Empty)
		require.NotNil(t, stored.TableGroupID)
		assert.Equal(t, group.ID, *stored.TableGroupID)
	}
}

func TestTableGroupService_CreateTableGroup_Rejections(t *testing.T) {
	f := newFixture(t)
	svc := NewTableGroupService(f.repo, nil)

	free1, free2 := f.table(0, true), f.table(0, true)
	occupied := f.table(2, false)
	g1, g2 := f.table(0, true), f.table(0, true)
	_, err := svc.CreateTableGroup(f.ctx, []uint{g1.ID, g2.ID})
	require.NoError(t, err)

	tests := []struct {
		name    string
		ids     []uint
		wantErr error
	}{
		{name: "no tables", ids: nil, wantErr: ErrValidation},
		{name: "one table", ids: []uint{free1.ID}, wantErr: ErrValidation},
		{name: "duplicate id counts once", ids: []uint{free1.ID, free1.ID}, wantErr: ErrValidation},
		{name: "unknown table", ids: []uint{free1.ID, 999}, wantErr: ErrNotFound},
		{name: "occupied table", ids: []uint{free1.ID, occupied.ID}, wantErr: ErrConflict},
		{name: "already grouped table", ids: []uint{free2.ID, g1.ID}, wantErr: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := svc.CreateTableGroup(f.ctx, tt.ids)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, group)
		})
	}

	for _, id := range []uint{free1.ID, free2.ID} {
		stored := f.reload(id)
		assert.Nil(t, stored.TableGroupID, "table %d must stay ungrouped", id)
		assert.True(t, stored.Empty)
	}
}

func TestTableGroupService_Ungroup(t *testing.T) {
	f := newFixture(t)
	menu := f.menu()
	t1, t2 := f.table(0, true), f.table(0, true)

	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, eventOfType(events.TypeTableGroupCreated)).Return(nil).Once()
	pub.On("Publish", mock.Anything, eventOfType(events.TypeTableGroupUngrouped)).Return(nil).Once()
	svc := NewTableGroupService(f.repo, pub)

	group, err := svc.CreateTableGroup(f.ctx, []uint{t1.ID, t2.ID})
	require.NoError(t, err)
	f.order(t1.ID, menu.ID, models.OrderStatusCompletion)

	require.NoError(t, svc.Ungroup(f.ctx, group.ID))
	pub.AssertExpectations(t)

	for _, id := range []uint{t1.ID, t2.ID} {
		stored := f.reload(id)
		assert.Nil(t, stored.TableGroupID)
		assert.False(t, stored.Empty)
	}
}

func TestTableGroupService_Ungroup_ActiveOrder(t *testing.T) {
	for _, status := range models.ActiveOrderStatuses {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			menu := f.menu()
			t1, t2 := f.table(0, true), f.table(0, true)
			svc := NewTableGroupService(f.repo, nil)

			group, err := svc.CreateTableGroup(f.ctx, []uint{t1.ID, t2.ID})
			require.NoError(t, err)
			f.order(t1.ID, menu.ID, status)

			err = svc.Ungroup(f.ctx, group.ID)
			assert.ErrorIs(t, err, ErrConflict)

			for _, id := range []uint{t1.ID, t2.ID} {
				stored := f.reload(id)
				require.NotNil(t, stored.TableGroupID)
				assert.Equal(t, group.ID, *stored.TableGroupID)
			}
		})
	}
}

func TestTableGroupService_Ungroup_NotFound(t *testing.T) {
	f := newFixture(t)
	svc := NewTableGroupService(f.repo, nil)

	assert.ErrorIs(t, svc.Ungroup(f.ctx, 77), ErrNotFound)
}
