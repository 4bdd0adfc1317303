// Package renttruck models a truck rental: who rents which truck, between which branches
// and over which dates, together with the payment and return state.
//
// Every rental starts ACTIVE regardless of the status a caller asks for. From ACTIVE a
// rental either completes when the truck comes back or gets cancelled; both are final.
package renttruck
