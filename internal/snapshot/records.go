package snapshot

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"casarural/internal/domain"
	apperrors "casarural/internal/errors"
)

// Payment discriminant values. Deserializing anything else fails with
// UnknownPaymentType.
const (
	paymentTypeCard = "Card"
	paymentTypeCash = "Cash"
)

// timeLayout is ISO-8601 local date-time, no offset.
const timeLayout = "2006-01-02T15:04:05"

// localTime serializes a timestamp in the snapshot's local date-time form.
type localTime time.Time

func (t localTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(timeLayout))
}

func (t *localTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return err
	}
	*t = localTime(parsed)
	return nil
}

type snapshotFile struct {
	House        houseRecord         `json:"house"`
	Clients      []clientRecord      `json:"clients"`
	Reservations []reservationRecord `json:"reservations"`
}

// houseRecord nests the room catalog under the house, which owns it.
type houseRecord struct {
	ID      uuid.UUID    `json:"id"`
	Name    string       `json:"name"`
	Address string       `json:"address"`
	Phone   string       `json:"phone"`
	Rooms   []roomRecord `json:"rooms"`
}

type roomRecord struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	Description  string          `json:"description"`
	Capacity     int             `json:"capacity"`
	NightlyPrice decimal.Decimal `json:"nightlyPrice"`
	Available    bool            `json:"available"`
}

type clientRecord struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullName"`
	DocumentNumber string    `json:"documentNumber"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
}

// paymentRecord is the flat union of both variants; Type picks the fields
// that matter on the way back in.
type paymentRecord struct {
	Type   string          `json:"type"`
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt localTime       `json:"paidAt"`
	Method string          `json:"method"`

	Holder     string `json:"holder,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
	Last4      string `json:"last4,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	Expiry     string `json:"expiry,omitempty"`

	Tendered *decimal.Decimal `json:"tendered,omitempty"`
	Change   *decimal.Decimal `json:"change,omitempty"`
}

type reservationRecord struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"clientId"`
	RoomID     uuid.UUID       `json:"roomId"`
	Start      localTime       `json:"start"`
	End        localTime       `json:"end"`
	Nights     int             `json:"nights"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	Payment    *paymentRecord  `json:"payment,omitempty"`
}

func encodeSnapshot(data Data) snapshotFile {
	file := snapshotFile{
		House: houseRecord{
			ID:      data.House.ID,
			Name:    data.House.Name,
			Address: data.House.Address,
			Phone:   data.House.Phone,
			Rooms:   []roomRecord{},
		},
		Clients:      []clientRecord{},
		Reservations: []reservationRecord{},
	}

	for _, room := range data.Rooms {
		file.House.Rooms = append(file.House.Rooms, roomRecord{
			ID:           room.ID,
			Code:         room.Code,
			Description:  room.Description,
			Capacity:     room.Capacity,
			NightlyPrice: room.NightlyPrice,
			Available:    room.Available,
		})
	}

	for _, client := range data.Clients {
		file.Clients = append(file.Clients, clientRecord{
			ID:             client.ID,
			FullName:       client.FullName,
			DocumentNumber: client.DocumentNumber,
			Email:          client.Email,
			Phone:          client.Phone,
		})
	}

	for _, res := range data.Reservations {
		file.Reservations = append(file.Reservations, reservationRecord{
			ID:         res.ID,
			ClientID:   res.ClientID,
			RoomID:     res.RoomID,
			Start:      localTime(res.Start),
			End:        localTime(res.End),
			Nights:     res.Nights,
			TotalPrice: res.TotalPrice,
			Status:     string(res.Status),
			Payment:    encodePayment(res.Payment),
		})
	}

	return file
}

func encodePayment(p domain.Payment) *paymentRecord {
	if p == nil {
		return nil
	}

	info := p.Info()
	rec := &paymentRecord{
		ID:     info.ID,
		Amount: info.Amount,
		PaidAt: localTime(info.PaidAt),
		Method: info.Method,
	}

	switch v := p.(type) {
	case *domain.CardPayment:
		rec.Type = paymentTypeCard
		rec.Holder = v.Holder
		rec.CardNumber = v.CardNumber
		rec.Last4 = v.Last4
		rec.CVV = v.CVV
		rec.Expiry = v.Expiry
	case *domain.CashPayment:
		rec.Type = paymentTypeCash
		tendered := v.Tendered
		change := v.Change
		rec.Tendered = &tendered
		rec.Change = &change
	}

	return rec
}

func decodeSnapshot(file snapshotFile) (*Data, error) {
	data := &Data{
		House: domain.House{
			ID:      file.House.ID,
			Name:    file.House.Name,
			Address: file.House.Address,
			Phone:   file.House.Phone,
		},
	}

	for _, rec := range file.House.Rooms {
		data.Rooms = append(data.Rooms, &domain.Room{
			ID:           rec.ID,
			Code:         rec.Code,
			Description:  rec.Description,
			Capacity:     rec.Capacity,
			NightlyPrice: rec.NightlyPrice,
			Available:    rec.Available,
		})
	}

	for _, rec := range file.Clients {
		data.Clients = append(data.Clients, &domain.Client{
			ID:             rec.ID,
			FullName:       rec.FullName,
			DocumentNumber: rec.DocumentNumber,
			Email:          rec.Email,
			Phone:          rec.Phone,
		})
	}

	for _, rec := range file.Reservations {
		payment, err := decodePayment(rec.Payment)
		if err != nil {
			return nil, err
		}
		data.Reservations = append(data.Reservations, domain.RehydrateReservation(
			rec.ID,
			rec.ClientID,
			rec.RoomID,
			time.Time(rec.Start),
			time.Time(rec.End),
			rec.TotalPrice,
			domain.ReservationStatus(rec.Status),
			payment,
		))
	}

	return data, nil
}

func decodePayment(rec *paymentRecord) (domain.Payment, error) {
	if rec == nil {
		return nil, nil
	}

	info := domain.PaymentInfo{
		ID:     rec.ID,
		Amount: rec.Amount,
		PaidAt: time.Time(rec.PaidAt),
		Method: rec.Method,
	}

	switch rec.Type {
	case paymentTypeCard:
		return &domain.CardPayment{
			PaymentInfo: info,
			Holder:      rec.Holder,
			CardNumber:  rec.CardNumber,
			Last4:       rec.Last4,
			CVV:         rec.CVV,
			Expiry:      rec.Expiry,
		}, nil
	case paymentTypeCash:
		cash := &domain.CashPayment{PaymentInfo: info}
		if rec.Tendered != nil {
			cash.Tendered = *rec.Tendered
		}
		if rec.Change != nil {
			cash.Change = *rec.Change
		}
		return cash, nil
	default:
		return nil, apperrors.NewUnknownPaymentTypeError("unknown payment type: " + rec.Type)
	}
}
