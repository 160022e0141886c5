package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemEntryRoundTrip(t *testing.T) {
	pair := ItemEntry{Name: "Steam Momo", Price: 9.03}
	payload, err := json.Marshal(pair)
	require.NoError(t, err)
	assert.JSONEq(t, `["Steam Momo", 9.03]`, string(payload))

	var decodedPair ItemEntry
	require.NoError(t, json.Unmarshal(payload, &decodedPair))
	assert.Equal(t, pair, decodedPair)

	triple := ItemEntry{Name: "Tandoori Momo", Price: 5.65, FirstGroup: "Veg or Non Veg", Customizable: true}
	payload, err = json.Marshal(triple)
	require.NoError(t, err)
	assert.JSONEq(t, `["Tandoori Momo", 5.65, "Veg or Non Veg"]`, string(payload))

	var decodedTriple ItemEntry
	require.NoError(t, json.Unmarshal(payload, &decodedTriple))
	assert.Equal(t, triple, decodedTriple)
}

func TestItemEntryRejectsWrongArity(t *testing.T) {
	var entry ItemEntry
	assert.Error(t, json.Unmarshal([]byte(`["only name"]`), &entry))
	assert.Error(t, json.Unmarshal([]byte(`["a", 1, "b", "c"]`), &entry))
}

func TestOptionEntryRoundTrip(t *testing.T) {
	free := OptionEntry{Name: "Veg"}
	payload, err := json.Marshal(free)
	require.NoError(t, err)
	assert.JSONEq(t, `["Veg"]`, string(payload))

	var decodedFree OptionEntry
	require.NoError(t, json.Unmarshal(payload, &decodedFree))
	assert.Equal(t, free, decodedFree)

	priced := OptionEntry{Name: "Non Veg", Price: 1.13, Priced: true}
	payload, err = json.Marshal(priced)
	require.NoError(t, err)
	assert.JSONEq(t, `["Non Veg", 1.13]`, string(payload))

	var decodedPriced OptionEntry
	require.NoError(t, json.Unmarshal(payload, &decodedPriced))
	assert.Equal(t, priced, decodedPriced)
}

func TestConvertedMenuMarshalsInOrder(t *testing.T) {
	menu := NewConvertedMenu()
	menu.EnsureCategory("Zebra Specials")
	menu.Append("Appetizers", ConvertedItem{Name: "Samosa", Price: "3.00"})
	menu.EnsureCategory("Mains")

	payload, err := json.Marshal(menu)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Zebra Specials":[],"Appetizers":[{"name":"Samosa","price":"3.00"}],"Mains":[]}`,
		string(payload))
}

func TestAmountDecodesStringsAndNumbers(t *testing.T) {
	var quoted Item
	require.NoError(t, json.Unmarshal([]byte(`{"name": "A", "price": "5.00"}`), &quoted))
	assert.Equal(t, "5.00", quoted.Price.String())
	assert.Equal(t, 5.0, quoted.Price.Float())

	var numeric Item
	require.NoError(t, json.Unmarshal([]byte(`{"name": "B", "price": 4.5}`), &numeric))
	assert.Equal(t, "4.5", numeric.Price.String())
	assert.Equal(t, 4.5, numeric.Price.Float())

	var absent Item
	require.NoError(t, json.Unmarshal([]byte(`{"name": "C"}`), &absent))
	assert.Equal(t, "0", absent.Price.String())
	assert.Equal(t, 0.0, absent.Price.Float())
}

func TestAmountKeepsWireShapeOnMarshal(t *testing.T) {
	quoted := NewQuotedAmount("5.00")
	payload, err := json.Marshal(quoted)
	require.NoError(t, err)
	assert.Equal(t, `"5.00"`, string(payload))

	numeric := NewAmount("4.5")
	payload, err = json.Marshal(numeric)
	require.NoError(t, err)
	assert.Equal(t, `4.5`, string(payload))

	var absent Amount
	payload, err = json.Marshal(absent)
	require.NoError(t, err)
	assert.Equal(t, `0`, string(payload))
}

func TestAmountUnparseableTextIsZero(t *testing.T) {
	assert.Equal(t, 0.0, NewQuotedAmount("free!").Float())
}

func TestOpeningPeriodFormatTag(t *testing.T) {
	var slotBased OpeningPeriod
	require.NoError(t, json.Unmarshal([]byte(`{"days": ["Mon"], "slots": []}`), &slotBased))
	assert.Equal(t, SlotBased, slotBased.Format())
	assert.Empty(t, slotBased.TimeRanges())

	var direct OpeningPeriod
	require.NoError(t, json.Unmarshal([]byte(`{"days": ["Mon"], "startTime": "09:00", "endTime": "17:00"}`), &direct))
	assert.Equal(t, DirectRange, direct.Format())
	assert.Equal(t, []TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}, direct.TimeRanges())

	var bare OpeningPeriod
	require.NoError(t, json.Unmarshal([]byte(`{"days": ["Mon"]}`), &bare))
	assert.Equal(t, FormatUnknown, bare.Format())
	assert.Nil(t, bare.TimeRanges())
}
