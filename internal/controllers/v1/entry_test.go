package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/kouden-ledger/backend/internal/controllers/v1"
	"github.com/kouden-ledger/backend/internal/models"
	"github.com/kouden-ledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestEntriesCreate() {
	tests := []struct {
		name           string
		entries        any
		expectedStatus int
		success        bool
		errors         []string
	}{
		{
			"One entry",
			[]v1.EntryEditable{{Name: "Yamada Taro", Amount: 10000}},
			http.StatusCreated,
			true,
			[]string{""},
		},
		{
			"Negative amount in second entry",
			[]v1.EntryEditable{{Name: "Suzuki Hanako", Amount: 5000}, {Name: "Tanaka Ichiro", Amount: -1}},
			http.StatusBadRequest,
			false,
			[]string{"", models.ErrAmountNegative.Error()},
		},
		{
			"Not a list",
			`{ "name": "Yamada Taro" }`,
			http.StatusBadRequest,
			false,
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/entries", tt.entries, suite.editor)
			test.AssertHTTPStatus(t, &recorder, tt.expectedStatus)

			var response v1.CreateResponse[v1.Entry]
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.success, response.Success)

			require.Len(t, response.Data, len(tt.errors))
			for i, e := range tt.errors {
				if e == "" {
					assert.Nil(t, response.Data[i].Error)
					assert.False(t, response.Data[i].Data.HasOffering, "New entries must not have offerings")
					assert.Equal(t, "http://example.com/v1/entries/"+response.Data[i].Data.ID.String(), response.Data[i].Data.Links.Self)
					continue
				}

				assert.Contains(t, *response.Data[i].Error, e)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEntriesCreatePermissions() {
	tests := []struct {
		name    string
		headers map[string]string
		status  int
	}{
		{"No user", map[string]string{}, http.StatusUnauthorized},
		{"Invalid user", test.Headers(uuid.Nil, "owner"), http.StatusUnauthorized},
		{"Viewer", suite.viewer, http.StatusForbidden},
		{"No role", map[string]string{"X-User-ID": uuid.New().String()}, http.StatusForbidden},
		{"Owner", test.Headers(uuid.New(), "owner"), http.StatusCreated},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/entries", []v1.EntryEditable{{Name: "Yamada Taro"}}, tt.headers)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEntriesHasOfferingNotWritable() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/entries", `[{ "name": "Yamada Taro", "hasOffering": true }]`, suite.editor)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CreateResponse[v1.Entry]
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.False(suite.T(), response.Data[0].Data.HasOffering)
}

func (suite *TestSuiteStandard) TestEntriesGet() {
	flagged := suite.createTestEntry(models.Entry{Name: "Yamada Taro"})
	suite.createTestEntry(models.Entry{Name: "Suzuki Hanako"})
	models.DB.Model(&flagged).UpdateColumn("has_offering", true)

	tests := []struct {
		query string
		len   int
	}{
		{"", 2},
		{"?hasOffering=true", 1},
		{"?hasOffering=false", 1},
		{"?name=Suzuki%20Hanako", 1},
		{"?name=Nobody", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/entries"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[[]v1.Entry]
			test.DecodeResponse(t, &recorder, &response)
			assert.True(t, response.Success)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestEntryGet() {
	entry := suite.createTestEntry(models.Entry{Name: "Yamada Taro", Amount: 10000})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", entry.ID.String(), http.StatusOK},
		{"Not found", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/entries/"+tt.id, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var response v1.Response[v1.Entry]
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.status == http.StatusOK, response.Success)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Yamada Taro", response.Data.Name)
				assert.Equal(t, int64(10000), response.Data.Amount)
			} else {
				assert.NotNil(t, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEntryTotal() {
	entry := suite.createTestEntry(models.Entry{Amount: 10000})
	other := suite.createTestEntry(models.Entry{Amount: 10000})
	offering := suite.createTestOffering(models.Offering{Price: 10000})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/offerings/"+offering.ID.String()+"/allocations", v1.AllocateBody{
		ParticipantIDs: []uuid.UUID{entry.ID, other.ID},
		Method:         "manual",
		ManualAmounts:  []int64{5000, 5000},
	}, suite.editor)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries/"+entry.ID.String()+"/total", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Total]
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), int64(10000), response.Data.BaseAmount)
	assert.Equal(suite.T(), int64(5000), response.Data.AllocatedTotal)
	assert.Equal(suite.T(), int64(15000), response.Data.CombinedTotal)
	assert.Equal(suite.T(), "JPY", response.Data.Currency)
	assert.Contains(suite.T(), response.Data.Formatted.CombinedTotal, "15,000")
}

func (suite *TestSuiteStandard) TestEntryTotalLocale() {
	suite.T().Setenv("CURRENCY_LOCALE", "en-US")
	entry := suite.createTestEntry(models.Entry{Amount: 250000})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries/"+entry.ID.String()+"/total", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response[v1.Total]
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "USD", response.Data.Currency)
	assert.Equal(suite.T(), int64(250000), response.Data.CombinedTotal)
	assert.Contains(suite.T(), response.Data.Formatted.CombinedTotal, "250,000")
}

func (suite *TestSuiteStandard) TestEntryTotalNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries/"+uuid.New().String()+"/total", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response v1.Response[v1.Total]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.False(suite.T(), response.Success)
}

func (suite *TestSuiteStandard) TestEntryAllocations() {
	entry := suite.createTestEntry(models.Entry{Amount: 10000})
	flowers := suite.createTestOffering(models.Offering{Price: 6000, Type: models.OfferingTypeFlower, ProviderName: "Yamada Florist"})
	food := suite.createTestOffering(models.Offering{Price: 4000, Type: models.OfferingTypeFood, ProviderName: "Suzuki Catering"})

	for _, o := range []models.Offering{flowers, food} {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/offerings/"+o.ID.String()+"/allocations", v1.AllocateBody{
			ParticipantIDs: []uuid.UUID{entry.ID},
			Method:         "equal",
		}, suite.editor)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	tests := []struct {
		query    string
		expected []string
	}{
		{"", []string{"Yamada Florist", "Suzuki Catering"}},
		{"?provider=Yamada*", []string{"Yamada Florist"}},
		{"?type=FOOD", []string{"Suzuki Catering"}},
		{"?provider=Yamada*&type=FOOD", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/entries/"+entry.ID.String()+"/allocations"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.Response[[]v1.EntryAllocation]
			test.DecodeResponse(t, &recorder, &response)

			providers := make([]string, 0, len(response.Data))
			for _, a := range response.Data {
				providers = append(providers, a.ProviderName)
			}
			assert.ElementsMatch(t, tt.expected, providers)
		})
	}
}

func (suite *TestSuiteStandard) TestEntryAllocationsNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries/"+uuid.New().String()+"/allocations", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEntriesDatabaseClosed() {
	suite.CloseDB()

	tests := []struct {
		name    string
		method  string
		path    string
		body    any
		headers map[string]string
	}{
		{"List", http.MethodGet, "http://example.com/v1/entries", "", nil},
		{"Get", http.MethodGet, "http://example.com/v1/entries/" + uuid.New().String(), "", nil},
		{"Total", http.MethodGet, "http://example.com/v1/entries/" + uuid.New().String() + "/total", "", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, tt.body, tt.headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}
