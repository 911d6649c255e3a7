package http

import "context"

type reservationIDKey struct{}
type roomIDKey struct{}
type roomTypeIDKey struct{}
type occupantIDKey struct{}

// ContextWithReservationID stores the path reservation id on the context.
func ContextWithReservationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reservationIDKey{}, id)
}

// ReservationIDFromContext extracts the path reservation id.
func ReservationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(reservationIDKey{}).(string)
	return id, ok
}

// ContextWithRoomID stores the path room id on the context.
func ContextWithRoomID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, roomIDKey{}, id)
}

// RoomIDFromContext extracts the path room id.
func RoomIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(roomIDKey{}).(string)
	return id, ok
}

// ContextWithRoomTypeID stores the path room type id on the context.
func ContextWithRoomTypeID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, roomTypeIDKey{}, id)
}

// RoomTypeIDFromContext extracts the path room type id.
func RoomTypeIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(roomTypeIDKey{}).(string)
	return id, ok
}

// ContextWithOccupantID stores the path occupant id on the context.
func ContextWithOccupantID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, occupantIDKey{}, id)
}

// OccupantIDFromContext extracts the path occupant id.
func OccupantIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(occupantIDKey{}).(string)
	return id, ok
}
