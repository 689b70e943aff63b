package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/kitchenpos/internal/events"
	"github.com/Skotchmaster/kitchenpos/internal/models"
)

type TableGroupService struct {
	Repo      TableGroupRepository
	Publisher Publisher
	Now       func() time.Time
}

func NewTableGroupService(repo TableGroupRepository, pub Publisher) *TableGroupService {
	return &TableGroupService{Repo: repo, Publisher: pub, Now: func() time.Time { return time.Now().UTC() }}
}

type tableGroupPayload struct {
	TableGroupID  uint   `json:"table_group_id"`
	OrderTableIDs []uint `json:"order_table_ids"`
}

// CreateTableGroup groups the tables atomically: either every table joins the
// new group or nothing is written.
func (s *TableGroupService) CreateTableGroup(ctx context.Context, tableIDs []uint) (*models.TableGroup, error) {
	ids := distinct(tableIDs)
	if len(ids) < models.MinGroupSize {
		return nil, fmt.Errorf("%w: table group needs at least %d distinct tables", ErrValidation, models.MinGroupSize)
	}

	var group *models.TableGroup
	err := s.Repo.Atomic(ctx, func(ctx context.Context) error {
		tables, err := s.Repo.FindOrderTablesByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(tables) != len(ids) {
			found := make([]uint, 0, len(tables))
			for _, t := range tables {
				found = append(found, t.ID)
			}
			return fmt.Errorf("%w: %w: order tables %v", ErrValidation, ErrNotFound, missing(ids, found))
		}
		if err := models.CheckGroupable(tables); err != nil {
			return err
		}

		group = &models.TableGroup{CreatedDate: s.Now()}
		if err := s.Repo.CreateTableGroup(ctx, group); err != nil {
			return err
		}
		group.Attach(tables)
		return s.Repo.SaveOrderTables(ctx, group.OrderTables...)
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Publisher, events.New(events.TypeTableGroupCreated, fmt.Sprint(group.ID), tableGroupPayload{
		TableGroupID:  group.ID,
		OrderTableIDs: group.TableIDs(),
	}))
	return group, nil
}

func (s *TableGroupService) Ungroup(ctx context.Context, id uint) error {
	var group *models.TableGroup
	err := s.Repo.Atomic(ctx, func(ctx context.Context) error {
		var err error
		group, err = s.Repo.FindTableGroupByID(ctx, id)
		if err != nil {
			return err
		}

		active, err := s.Repo.ExistsOrdersByTableIDsAndStatuses(ctx, group.TableIDs(), models.ActiveOrderStatuses)
		if err != nil {
			return err
		}
		if active {
			return fmt.Errorf("%w: table group %d has cooking or meal orders", ErrConflict, id)
		}

		group.Ungroup()
		return s.Repo.SaveOrderTables(ctx, group.OrderTables...)
	})
	if err != nil {
		return err
	}

	publish(ctx, s.Publisher, events.New(events.TypeTableGroupUngrouped, fmt.Sprint(id), tableGroupPayload{
		TableGroupID:  id,
		OrderTableIDs: group.TableIDs(),
	}))
	return nil
}
