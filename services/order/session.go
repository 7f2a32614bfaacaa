package order

import (
	"context"
	"fmt"

	"washly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validServiceType(serviceType string) bool {
	switch serviceType {
	case models.ServiceWashNFold, models.ServiceDryCleaning, models.ServiceTailoring:
		return true
	}
	return false
}

// StartOrder opens a SERVICE-flow session from the generic catalog. Item
// names come from the global dropdown lists; prices stay unresolved until a
// store is chosen at the store-selection step. Any prior draft state is
// discarded with the new session ID.
func (s *DefaultOrderSessionService) StartOrder(ctx context.Context, userID, serviceType string) (*models.OrderSession, error) {
	if !validServiceType(serviceType) {
		return nil, fmt.Errorf("unknown service type %q", serviceType)
	}

	dropdowns, err := s.Catalog.FetchDropdowns(ctx, serviceType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dropdown catalog: %w", err)
	}

	sess := &models.OrderSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		FlowKind:    models.FlowService,
		CurrentStep: StepPickup,
		TotalSteps:  TotalStepsFor(models.FlowService),
		Active:      true,
		Draft: models.OrderDraft{
			ServiceType: serviceType,
			Items:       []models.OrderItem{},
			AddOns:      []models.AddOnSelection{},
		},
		Dropdowns: dropdowns,
	}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger().Info("started order session",
		zap.String("sessionID", sess.SessionID),
		zap.String("flow", sess.FlowKind),
		zap.String("serviceType", serviceType))
	return sess, nil
}

// StartOrderFromStore opens a STORE-flow session with the store fixed by
// the entry point. The store catalog is resolved up front so item prices
// attach without another round trip.
func (s *DefaultOrderSessionService) StartOrderFromStore(ctx context.Context, userID, serviceType string, store models.Store) (*models.OrderSession, error) {
	if !validServiceType(serviceType) {
		return nil, fmt.Errorf("unknown service type %q", serviceType)
	}
	if store.StoreID == "" {
		return nil, fmt.Errorf("storeId is required")
	}

	storeCatalog, err := s.Catalog.FetchStoreCatalog(ctx, store.StoreID, serviceType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store catalog: %w", err)
	}

	sess := &models.OrderSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		FlowKind:    models.FlowStore,
		CurrentStep: StepPickup,
		TotalSteps:  TotalStepsFor(models.FlowStore),
		Active:      true,
		Draft: models.OrderDraft{
			ServiceType: serviceType,
			Store:       &store,
			Items:       []models.OrderItem{},
			AddOns:      []models.AddOnSelection{},
		},
		Catalog:         ResolveCatalog(storeCatalog.Offerings),
		AvailableAddOns: storeCatalog.AddOns,
	}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger().Info("started order session",
		zap.String("sessionID", sess.SessionID),
		zap.String("flow", sess.FlowKind),
		zap.String("storeID", store.StoreID))
	return sess, nil
}

// GetSession returns the live session so a client can resume mid-flow.
func (s *DefaultOrderSessionService) GetSession(ctx context.Context, sessionID string) (*models.OrderSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// mutate loads the session, applies fn to it, bumps the version and saves.
// Every draft mutation goes through here so the stale-response guard can
// rely on the version moving.
func (s *DefaultOrderSessionService) mutate(ctx context.Context, sessionID string, fn func(*models.OrderSession) error) (*models.OrderSession, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.Version++
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetPickup applies pickup details to the draft.
func (s *DefaultOrderSessionService) SetPickup(ctx context.Context, sessionID string, details models.PickupDetails) (*models.OrderSession, error) {
	if details.PickupAddress == "" {
		return nil, fmt.Errorf("pickupAddress is required")
	}
	if details.CollectionDate == "" {
		return nil, fmt.Errorf("collectionDate is required")
	}
	if details.CollectionTime == "" {
		return nil, fmt.Errorf("collectionTime is required")
	}
	return s.mutate(ctx, sessionID, func(sess *models.OrderSession) error {
		sess.Draft = SetPickup(sess.Draft, details)
		return nil
	})
}

// SetItems replaces the draft's item list from the raw selection, attaching
// prices from the session's resolved catalog when one exists.
func (s *DefaultOrderSessionService) SetItems(ctx context.Context, sessionID string, sel ItemSelection) (*models.OrderSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.OrderSession) error {
		sess.Draft = SetItems(sess.Draft, sel, sess.Catalog)
		return nil
	})
}

// SetStore records the chosen store, resolves its catalog and reconciles
// the draft against the new prices and stock in the same mutation. Items
// unknown to the new catalog are dropped and add-on quantities clamped.
func (s *DefaultOrderSessionService) SetStore(ctx context.Context, sessionID string, store models.Store) (*models.OrderSession, error) {
	if store.StoreID == "" {
		return nil, fmt.Errorf("storeId is required")
	}

	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	storeCatalog, err := s.Catalog.FetchStoreCatalog(ctx, store.StoreID, sess.Draft.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store catalog: %w", err)
	}

	return s.mutate(ctx, sessionID, func(sess *models.OrderSession) error {
		sess.Draft = SetStore(sess.Draft, store)
		sess.Catalog = ResolveCatalog(storeCatalog.Offerings)
		sess.AvailableAddOns = storeCatalog.AddOns
		sess.Draft = ApplyCatalog(sess.Draft, sess.Catalog, sess.AvailableAddOns)
		return nil
	})
}

// SetAddOns replaces the add-on selection, bounded by the stock known to
// the session. Selections whose ID is not in the session's inventory are
// dropped; prices and stock always come from the session, never the client.
func (s *DefaultOrderSessionService) SetAddOns(ctx context.Context, sessionID string, selections []models.AddOnSelection) (*models.OrderSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.OrderSession) error {
		stock := make(map[string]models.AddOn, len(sess.AvailableAddOns))
		for _, a := range sess.AvailableAddOns {
			stock[a.ID] = a
		}
		bounded := make([]models.AddOnSelection, 0, len(selections))
		for _, sel := range selections {
			current, ok := stock[sel.AddOn.ID]
			if !ok {
				s.logger().Debug("dropping add-on unknown to session inventory",
					zap.String("sessionID", sessionID),
					zap.String("addOnID", sel.AddOn.ID))
				continue
			}
			sel.AddOn = current
			bounded = append(bounded, sel)
		}
		sess.Draft = SetAddOns(sess.Draft, bounded)
		return nil
	})
}

// NextStep advances the flow machine.
func (s *DefaultOrderSessionService) NextStep(ctx context.Context, sessionID string) (*models.OrderSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.OrderSession) error {
		*sess = NextStep(*sess)
		return nil
	})
}

// PrevStep walks the flow machine backward.
func (s *DefaultOrderSessionService) PrevStep(ctx context.Context, sessionID string) (*models.OrderSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.OrderSession) error {
		*sess = PrevStep(*sess)
		return nil
	})
}

// ResetOrder abandons the draft immediately; nothing survives.
func (s *DefaultOrderSessionService) ResetOrder(ctx context.Context, sessionID string) error {
	s.logger().Info("resetting order session", zap.String("sessionID", sessionID))
	return s.Sessions.Delete(ctx, sessionID)
}
