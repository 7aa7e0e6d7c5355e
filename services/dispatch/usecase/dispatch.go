package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
	"github.com/sewaroda/sewaroda/services/dispatch"
)

// NotifyNearbyDrivers runs one dispatch for a committed booking.
//
// The sequence is strictly ordered up to matching: enumerate presence,
// resolve all distances in one batch, filter by radius. A failure in any of
// those steps aborts the dispatch, since there is no meaningful partial
// result without distances. From matching onward the call is best effort:
// notification appends and group joins fan out per driver, one driver's
// failure never blocks the rest, and the single group broadcast is issued
// only after every join has finished.
func (uc *DispatchUC) NotifyNearbyDrivers(ctx context.Context, event models.BookingEvent) (*models.DispatchResult, error) {
	result := &models.DispatchResult{BookingID: event.BookingID}

	presences, err := uc.presenceRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dispatch.ErrPresenceUnavailable, err)
	}

	if len(presences) == 0 {
		logger.Info("Dispatch found no online drivers",
			logger.Int64("booking_id", event.BookingID))
		result.MatchedDrivers = []string{}
		uc.publishCompleted(ctx, result)
		return result, nil
	}

	distances, err := uc.distanceGW.ResolveDistances(ctx, event.PickupLocation(), presences)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dispatch.ErrDistanceResolution, err)
	}

	matched := FilterWithinRadius(distances, uc.cfg.Dispatch.RadiusMeters)
	result.MatchedDrivers = matched

	logger.Info("Dispatch matched drivers",
		logger.Int64("booking_id", event.BookingID),
		logger.Int("online", len(presences)),
		logger.Int("matched", len(matched)))

	if len(matched) == 0 {
		uc.publishCompleted(ctx, result)
		return result, nil
	}

	groupID := strconv.FormatInt(event.BookingID, 10)

	// Persistence and group joins are independent per driver. The
	// broadcast below must not start before the last join has finished.
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, driverID := range matched {
		wg.Add(1)
		go func(driverID string) {
			defer wg.Done()

			notification := models.Notification{
				Content:   constants.BookingNearbyMessage,
				DriverID:  driverID,
				BookingID: event.BookingID,
			}
			if _, err := uc.notifRepo.Append(ctx, notification); err != nil {
				logger.Warn("Failed to persist dispatch notification",
					logger.Int64("booking_id", event.BookingID),
					logger.String("driver_id", driverID),
					logger.Err(err))
				mu.Lock()
				result.Failures = append(result.Failures, models.DispatchFailure{
					DriverID: driverID,
					Reason:   err.Error(),
				})
				mu.Unlock()
			} else {
				mu.Lock()
				result.Notified++
				mu.Unlock()
			}

			// A driver without live connections still keeps the durable
			// notification; they are just excluded from the push.
			connIDs := uc.realtimeGW.Connections(driverID)
			for _, connID := range connIDs {
				uc.realtimeGW.JoinGroup(connID, groupID)
			}
			mu.Lock()
			result.JoinedConnections += len(connIDs)
			mu.Unlock()
		}(driverID)
	}
	wg.Wait()

	uc.realtimeGW.BroadcastToGroup(groupID, constants.EventReceiveMessage, constants.BookingNearbyMessage)
	result.Broadcasts = 1

	uc.publishCompleted(ctx, result)

	return result, nil
}

// publishCompleted emits the dispatch summary event. Publishing is best
// effort; a broker outage never fails a dispatch that already ran.
func (uc *DispatchUC) publishCompleted(ctx context.Context, result *models.DispatchResult) {
	if err := uc.eventGW.PublishDispatchCompleted(ctx, *result); err != nil {
		logger.Warn("Failed to publish dispatch completed event",
			logger.Int64("booking_id", result.BookingID),
			logger.Err(err))
	}
}

// UpdateDriverLocation refreshes the driver's presence entry with their
// latest reported coordinates
func (uc *DispatchUC) UpdateDriverLocation(ctx context.Context, driverID string, location models.Location) error {
	if err := uc.presenceRepo.Put(ctx, driverID, location); err != nil {
		return fmt.Errorf("failed to update driver presence: %w", err)
	}
	return nil
}
