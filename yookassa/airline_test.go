package yookassa

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"

	errorutils "github.com/brave-intl/yookassa-go/errors"
	"github.com/brave-intl/yookassa-go/ptr"
)

func TestParseAirline(t *testing.T) {
	data := fixture(t, "airline.json")

	a, err := ParseAirline(context.Background(), data)
	must.NoError(t, err)

	should.Equal(t, "5554916004417", ptr.String(a.TicketNumber))
	should.Equal(t, []Passenger{{FirstName: "SERGEI", LastName: "IVANOV"}}, a.Passengers)
	must.Len(t, a.Flights, 1)
	should.Equal(t, "LED", a.Flights[0].DepartureAirport)
	should.Equal(t, NewDate(2018, time.June, 20), a.Flights[0].DepartureDate)
	should.Equal(t, "SU", ptr.String(a.Flights[0].CarrierCode))

	out, err := json.Marshal(a)
	must.NoError(t, err)
	should.JSONEq(t, string(data), string(out))
}

func TestParseAirline_Variants(t *testing.T) {
	type tcExpected struct {
		flights int
		fields  []string
	}

	type testCase struct {
		name  string
		given string
		exp   tcExpected
	}

	tests := []testCase{
		{
			name:  "empty",
			given: `{}`,
		},

		{
			name:  "canonical_flights",
			given: `{"flights": [{"departure_airport": "LED", "arrival_airport": "AMS", "departure_date": "2018-06-20"}]}`,
			exp:   tcExpected{flights: 1},
		},

		{
			name:  "incomplete_leg",
			given: `{"legs": [{"departure_airport": "LED"}]}`,
			exp: tcExpected{
				fields: []string{"legs[0].arrival_airport", "legs[0].departure_date"},
			},
		},

		{
			name:  "incomplete_passenger",
			given: `{"passengers": [{"first_name": "SERGEI"}]}`,
			exp: tcExpected{
				fields: []string{"passengers[0].last_name"},
			},
		},
	}

	for i := range tests {
		tc := tests[i]

		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParseAirline(context.Background(), []byte(tc.given))
			if tc.exp.fields != nil {
				must.Error(t, err)
				should.Equal(t, tc.exp.fields, errorutils.FieldPaths(err))
				return
			}

			must.NoError(t, err)
			should.Len(t, actual.Flights, tc.exp.flights)
		})
	}
}
