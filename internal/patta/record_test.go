package patta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowFollowsHeader(t *testing.T) {
	r := Record{
		ID:            "TG_ADI_001",
		HolderName:    "Raju Gond",
		Status:        Approved,
		LandAreaAcres: 2,
		Latitude:      19.66,
		Longitude:     78.5321,
		Village:       "Village_123",
		District:      "Adilabad",
		State:         "Telangana",
		Fallback:      true,
	}
	row := r.Row()
	assert.Len(t, row, len(Header))
	assert.Equal(t, []string{"TG_ADI_001", "Raju Gond", "APPROVED", "2.0", "19.6600", "78.5321", "Village_123", "Adilabad", "Telangana"}, row)
}
