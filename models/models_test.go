package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    TableID
		wantErr bool
	}{
		{in: `7`, want: 7},
		{in: `"7"`, want: 7},
		{in: `" 12 "`, want: 12},
		{in: `null`, want: 0},
		{in: `"seven"`, wantErr: true},
		{in: `7.5`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id TableID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestTableID_EncodesAsNumber(t *testing.T) {
	b, err := json.Marshal(struct {
		ID TableID `json:"id"`
	}{ID: 9})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9}`, string(b))
	assert.Equal(t, "9", TableID(9).String())
}

func TestCoordinate_UnmarshalJSON(t *testing.T) {
	var req LocationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"lat":"19.07","lng":72.87}`), &req))
	require.NotNil(t, req.Lat)
	require.NotNil(t, req.Lng)
	assert.Equal(t, Coordinate(19.07), *req.Lat)
	assert.Equal(t, Coordinate(72.87), *req.Lng)

	req = LocationRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"lat":0,"lng":0}`), &req))
	require.NotNil(t, req.Lat, "zero is a coordinate")

	req = LocationRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"lng":1}`), &req))
	assert.Nil(t, req.Lat)

	assert.Error(t, json.Unmarshal([]byte(`{"lat":"north","lng":1}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"lat":[1],"lng":1}`), &req))
}

func TestTable_PublicHidesHash(t *testing.T) {
	view := Table{ID: 1, Name: "Bar", PinHash: "$2a$10$abc"}.Public()
	assert.Equal(t, TableView{ID: 1, Name: "Bar", HasPin: true}, view)

	b, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "$2a$")
}

func TestOrderTotal(t *testing.T) {
	items := []OrderItem{
		{Name: "Pizza", Qty: 2, Price: 9.99},
		{Name: "Tea", Qty: 3, Price: 0.1},
	}
	assert.Equal(t, 20.28, OrderTotal(items))
	assert.Zero(t, OrderTotal(nil))
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	orig := NewSnapshot()
	orig.Admin = &AdminAccount{Username: "admin"}
	orig.Tables = append(orig.Tables, Table{ID: 1})
	orig.Orders = append(orig.Orders, Order{ID: "a", Items: []OrderItem{{Name: "Tea", Qty: 1}}})

	cp := orig.Clone()
	cp.Admin.Username = "other"
	cp.Tables[0].Name = "changed"
	cp.Orders[0].Items[0].Qty = 5

	assert.Equal(t, "admin", orig.Admin.Username)
	assert.Empty(t, orig.Tables[0].Name)
	assert.Equal(t, 1, orig.Orders[0].Items[0].Qty)
}

func TestSnapshot_FindTable(t *testing.T) {
	s := Snapshot{Tables: []Table{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}}

	table, ok := s.FindTable(2)
	require.True(t, ok)
	assert.Equal(t, "B", table.Name)

	_, ok = s.FindTable(3)
	assert.False(t, ok)
}

func TestCreateOrderRequest_OrderItemsTrimsNames(t *testing.T) {
	req := CreateOrderRequest{Items: []OrderItemRequest{{Name: "  Pizza ", Qty: 1, Price: 5}}}
	assert.Equal(t, []OrderItem{{Name: "Pizza", Qty: 1, Price: 5}}, req.OrderItems())
}

func TestAppBuildInfo_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewAppBuildInfo("1.2.0", "", "abc123"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.0","date":"N/A","commit":"abc123"}`, string(b))
}
