package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcallaghan/tradebook/internal/importer"
)

func TestService_Parse_CommaDelimited(t *testing.T) {
	input := "description,amount,date,reimbursable\n" +
		"Diesel top-up,45.00,2025-03-12,no\n" +
		"Timber supplies,210.50,2025-03-13,yes\n"

	svc := importer.NewService()
	params, err := svc.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "Diesel top-up", params[0].Description)
	assert.Equal(t, int64(4500), params[0].Amount)
	assert.False(t, params[0].Reimbursable)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), params[0].Date)

	assert.Equal(t, int64(21050), params[1].Amount)
	assert.True(t, params[1].Reimbursable)
}

func TestService_Parse_SemicolonEuropeanAmounts(t *testing.T) {
	input := "description;amount;date\n" +
		"Diesel;1.234,56;2025-03-12\n"

	svc := importer.NewService()
	params, err := svc.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, int64(123456), params[0].Amount)
	assert.False(t, params[0].Reimbursable)
}

func TestService_Parse_HeaderAliasesAndBlankRows(t *testing.T) {
	input := "Item,Cost,Date\n" +
		"\n" +
		"Parking,5.00,12/03/2025\n" +
		" , , \n"

	svc := importer.NewService()
	params, err := svc.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Parking", params[0].Description)
	assert.Equal(t, int64(500), params[0].Amount)
}

func TestService_Parse_MissingHeader(t *testing.T) {
	input := "just,some,cells\n1,2,3\n"

	svc := importer.NewService()
	_, err := svc.Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestService_Parse_BadAmount(t *testing.T) {
	input := "description,amount,date\nDiesel,not-a-number,2025-03-12\n"

	svc := importer.NewService()
	_, err := svc.Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestService_Parse_BadDate(t *testing.T) {
	input := "description,amount,date\nDiesel,45.00,someday\n"

	svc := importer.NewService()
	_, err := svc.Parse(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized format")
}
