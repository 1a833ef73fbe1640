package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"gest35bi/apperrors"
)

func TestNewIndicatorHasTwelveEmptyMonths(t *testing.T) {
	ind := NewIndicator("Uptime", "99.9%", 4)

	values := ind.MonthlyValues.Values()
	assert.Len(t, values, 12)
	for i, v := range values {
		assert.Empty(t, v, "month %s", Months[i])
	}
	assert.Equal(t, 0, ind.MonthlyValues.Filled())
}

func TestIndicatorJSONCarriesAllMonthKeys(t *testing.T) {
	data, err := json.Marshal(NewIndicator("Uptime", "99.9%", 4))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	months, ok := decoded["desempenhos"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, months, 12)
	for _, key := range Months {
		assert.Contains(t, months, key)
		assert.Equal(t, "", months[key])
	}
	assert.EqualValues(t, 4, decoded["oeo"])
	assert.Equal(t, "Uptime", decoded["nome"])
	assert.Equal(t, "99.9%", decoded["meta"])
}

func TestMonthlyValuesSetChangesOnlyOneKey(t *testing.T) {
	var m MonthlyValues
	require.NoError(t, m.Set("janeiro", "42"))

	for _, key := range Months {
		v, ok := m.Get(key)
		require.True(t, ok)
		if key == "janeiro" {
			assert.Equal(t, "42", v)
		} else {
			assert.Empty(t, v, key)
		}
	}
}

func TestMonthlyValuesAliases(t *testing.T) {
	var m MonthlyValues
	require.NoError(t, m.Set("march", "10%"))

	v, ok := m.Get("marco")
	require.True(t, ok)
	assert.Equal(t, "10%", v)
	assert.Equal(t, "10%", m.March)
}

func TestMonthlyValuesRejectsUnknownMonth(t *testing.T) {
	var m MonthlyValues
	require.NoError(t, m.Set("abril", "1"))

	for _, month := range []string{"13th-month", "março", "Janeiro", "", "JANUARY"} {
		err := m.Set(month, "x")
		assert.ErrorIs(t, err, apperrors.ErrInvalidMonth, month)
	}
	assert.Equal(t, []string{"", "", "", "1", "", "", "", "", "", "", "", ""}, m.Values())
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Março", MonthLabel("marco"))
	assert.Equal(t, "Dezembro", MonthLabel("dezembro"))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Category
		ok    bool
	}{
		{"int", 4, 4, true},
		{"lower bound", 1, 1, true},
		{"upper bound", 9, 9, true},
		{"numeric string", "7", 7, true},
		{"padded string", " 3 ", 3, true},
		{"integral float", float64(2), 2, true},
		{"flex string", FlexString("5"), 5, true},
		{"integral float string", "4.0", 4, true},
		{"exponent string", "4e0", 4, true},
		{"integral float flex string", FlexString("9.00"), 9, true},
		{"float out of range", float64(1e300), 0, false},
		{"nan string", "NaN", 0, false},
		{"zero", 0, 0, false},
		{"ten", 10, 0, false},
		{"negative", -1, 0, false},
		{"text", "abc", 0, false},
		{"fraction", 4.5, 0, false},
		{"fraction string", "4.5", 0, false},
		{"empty", "", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryKeyAndLabel(t *testing.T) {
	assert.Equal(t, "3", Category(3).Key())
	assert.Equal(t, "OEO 3", Category(3).Label())
	assert.Equal(t, UnclassifiedKey, Category(0).Key())
	assert.Equal(t, UnclassifiedLabel, Category(12).Label())
}

func TestCategoryBSONRoundTrip(t *testing.T) {
	type doc struct {
		OEO Category `bson:"oeo"`
	}

	data, err := bson.Marshal(doc{OEO: 6})
	require.NoError(t, err)

	raw := bson.Raw(data)
	assert.Equal(t, int32(6), raw.Lookup("oeo").Int32())

	var decoded doc
	require.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, Category(6), decoded.OEO)
}

func TestCategoryDecodesLegacyDocuments(t *testing.T) {
	type doc struct {
		OEO Category `bson:"oeo"`
	}

	tests := []struct {
		name  string
		value any
		want  Category
	}{
		{"string", "4", 4},
		{"int64", int64(8), 8},
		{"double", 2.0, 2},
		{"text", "Não definido", 0},
		{"out of range string", "12", 0},
		{"null", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := bson.Marshal(bson.M{"oeo": tt.value})
			require.NoError(t, err)

			var decoded doc
			require.NoError(t, bson.Unmarshal(data, &decoded))
			assert.Equal(t, tt.want, decoded.OEO)
		})
	}
}

func TestLegacyIndicatorDocument(t *testing.T) {
	data, err := bson.Marshal(bson.M{
		"nome":        "Disponibilidade",
		"meta":        "95%",
		"oeo":         "3",
		"desempenhos": bson.M{"marco": "91%"},
		"__v":         0,
	})
	require.NoError(t, err)

	var ind Indicator
	require.NoError(t, bson.Unmarshal(data, &ind))
	assert.Equal(t, Category(3), ind.Category)
	assert.Equal(t, "91%", ind.MonthlyValues.March)
	assert.Equal(t, 1, ind.MonthlyValues.Filled())
}

func TestFlexStringUnmarshal(t *testing.T) {
	type body struct {
		Value *FlexString `json:"value"`
	}

	tests := []struct {
		name    string
		payload string
		want    string
		isNil   bool
		wantErr bool
	}{
		{"string", `{"value":"10%"}`, "10%", false, false},
		{"number", `{"value":99.9}`, "99.9", false, false},
		{"integer", `{"value":4}`, "4", false, false},
		{"empty string", `{"value":""}`, "", false, false},
		{"null", `{"value":null}`, "", true, false},
		{"absent", `{}`, "", true, false},
		{"bool", `{"value":true}`, "", false, true},
		{"object", `{"value":{"a":1}}`, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			err := json.Unmarshal([]byte(tt.payload), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.isNil {
				assert.Nil(t, b.Value)
				return
			}
			require.NotNil(t, b.Value)
			assert.Equal(t, tt.want, b.Value.String())
		})
	}
}

func TestPatchIsEmpty(t *testing.T) {
	name := "x"
	assert.True(t, IndicatorPatch{}.IsEmpty())
	assert.False(t, IndicatorPatch{Name: &name}.IsEmpty())
	assert.True(t, IndicatorUpdate{}.IsEmpty())
}
