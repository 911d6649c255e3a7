package application

import "github.com/Donovan7777/hotel/internal/persistence"

func toRoomTypeView(roomType persistence.RoomType) RoomTypeView {
	return RoomTypeView{
		ID:           roomType.ID,
		Name:         roomType.Name,
		FloorPrice:   roomType.FloorPrice,
		CeilingPrice: copyString(roomType.CeilingPrice),
		Description:  copyString(roomType.Description),
	}
}

func toRoomView(room persistence.Room, roomType *persistence.RoomType) RoomView {
	view := RoomView{
		ID:        room.ID,
		Number:    room.Number,
		Available: room.Available,
		Notes:     copyString(room.Notes),
	}
	if roomType != nil {
		typeView := toRoomTypeView(*roomType)
		view.RoomType = &typeView
	}
	return view
}

func toOccupantView(occupant persistence.Occupant) OccupantView {
	return OccupantView{
		ID:        occupant.ID,
		FirstName: occupant.FirstName,
		LastName:  occupant.LastName,
		Address:   occupant.Address,
		Mobile:    occupant.Mobile,
		Category:  occupant.Category,
	}
}

func toReservationView(hydrated persistence.HydratedReservation) ReservationView {
	return ReservationView{
		ID:          hydrated.Reservation.ID,
		Start:       hydrated.Reservation.Start,
		End:         hydrated.Reservation.End,
		PricePerDay: hydrated.Reservation.PricePerDay,
		Note:        copyString(hydrated.Reservation.Note),
		Room:        toRoomView(hydrated.Room, hydrated.RoomType),
		Occupant:    toOccupantView(hydrated.Occupant),
	}
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
