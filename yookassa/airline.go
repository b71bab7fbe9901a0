package yookassa

import (
	"context"

	"github.com/brave-intl/yookassa-go/inputs"
	"github.com/brave-intl/yookassa-go/ptr"
)

// Passenger is a traveller named on an airline ticket
type Passenger struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (p *Passenger) decode(o *object) {
	p.FirstName = ptr.String(o.str(true, "first_name"))
	p.LastName = ptr.String(o.str(true, "last_name"))
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Passenger) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "passenger", data, p)
}

// Flight is one leg of an itinerary
type Flight struct {
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	DepartureDate    Date    `json:"departure_date"`
	CarrierCode      *string `json:"carrier_code,omitempty"`
}

func (f *Flight) decode(o *object) {
	f.DepartureAirport = ptr.String(o.str(true, "departure_airport"))
	f.ArrivalAirport = ptr.String(o.str(true, "arrival_airport"))
	f.DepartureDate = ptr.Value(o.date(true, "departure_date"))
	f.CarrierCode = o.str(false, "carrier_code")
}

// UnmarshalJSON implements json.Unmarshaler
func (f *Flight) UnmarshalJSON(data []byte) error {
	return unmarshal(context.Background(), "flight", data, f)
}

// Airline is the ticket data attached to an airline payment
type Airline struct {
	TicketNumber     *string     `json:"ticket_number,omitempty"`
	BookingReference *string     `json:"booking_reference,omitempty"`
	Passengers       []Passenger `json:"passengers,omitzero"`
	Flights          []Flight    `json:"legs,omitzero"`
}

func (a *Airline) decode(o *object) {
	a.TicketNumber = o.str(false, "ticket_number")
	a.BookingReference = o.str(false, "booking_reference")
	a.Passengers = list[Passenger](o, false, "passengers")
	a.Flights = list[Flight](o, false, alias("legs")...)
}

// Decode implements inputs.Decodable
func (a *Airline) Decode(ctx context.Context, data []byte) error {
	return unmarshal(ctx, "airline", data, a)
}

// Validate implements inputs.Validatable
func (a *Airline) Validate(ctx context.Context) error {
	return validate(ctx, "airline", a)
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Airline) UnmarshalJSON(data []byte) error {
	return a.Decode(context.Background(), data)
}

// ParseAirline builds an Airline from its wire form
func ParseAirline(ctx context.Context, data []byte) (*Airline, error) {
	var a Airline
	if err := inputs.Decode(ctx, &a, data); err != nil {
		return nil, err
	}
	return &a, nil
}
