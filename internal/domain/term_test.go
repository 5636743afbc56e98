package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studyspaces/internal/domain"
)

// TestTerm_Semester verifies the display form: capitalized label, space, year.
func TestTerm_Semester(t *testing.T) {
	assert.Equal(t, "Fall 2025", domain.Term{Year: "2025", Label: "fall"}.Semester())
	assert.Equal(t, "Spring 2026", domain.Term{Year: "2026", Label: "SPRING"}.Semester())
	assert.Equal(t, "2025", domain.Term{Year: "2025"}.Semester())
}

// TestDeriveRoomID verifies spaces are removed from the building only.
func TestDeriveRoomID(t *testing.T) {
	assert.Equal(t, "WohlersHall-241", domain.DeriveRoomID("Wohlers Hall", "241"))
	assert.Equal(t, "SiebelCenter-21-3", domain.DeriveRoomID("Siebel Center", "21-3"))
}
