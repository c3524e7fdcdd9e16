package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/stretchr/testify/require"
)

func TestOrdered_JSONKeepsInsertionOrder(t *testing.T) {
	var reserves model.CourseReserves
	reserves.Set("CS301", nil)
	reserves.Set("CS101", []model.CourseReserveItem{{ClassSize: 30}})
	reserves.Set("CS201", []model.CourseReserveItem{})

	data, err := json.Marshal(reserves)
	require.NoError(t, err)
	require.JSONEq(t, `{"CS301":null,"CS101":[{"book":{"isbn":"","title":"","author":"","price":0},"classSize":30,"addedDate":"0001-01-01T00:00:00Z","addedBy":""}],"CS201":[]}`, string(data))

	var decoded model.CourseReserves
	require.NoError(t, json.Unmarshal([]byte(`{"b":[],"a":[],"c":[]}`), &decoded))
	require.Equal(t, []string{"b", "a", "c"}, decoded.Keys())
}

func TestOrdered_SetDelete(t *testing.T) {
	var o model.Ordered[int]
	o.Set("a", 1)
	o.Set("b", 2)
	o.Set("a", 3)
	o.Delete("missing")

	require.Equal(t, []string{"a", "b"}, o.Keys())
	v, ok := o.Get("a")
	require.True(t, ok)
	require.Equal(t, 3, v)

	o.Delete("a")
	require.Equal(t, []string{"b"}, o.Keys())
	require.Equal(t, 1, o.Len())
	_, ok = o.Get("a")
	require.False(t, ok)
}

func TestOrdered_Null(t *testing.T) {
	var o model.Ordered[int]
	require.NoError(t, json.Unmarshal([]byte(`null`), &o))
	require.Zero(t, o.Len())

	data, err := json.Marshal(o)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))
}

func TestState_EncodeDecode(t *testing.T) {
	when := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	var st model.State
	st.BookRequests.Set("9-9", model.RequestEntry{Book: model.BookRecord{ISBN: "9-9"}, RequestCount: 2, RequestedDate: when})
	st.BookRequests.Set("1-1", model.RequestEntry{Book: model.BookRecord{ISBN: "1-1"}, RequestCount: 1, RequestedDate: when})
	st.TotalSavings = 99.5
	st.CurrentPersona = model.PersonaProfessor
	st.UserRequests = model.UserRequests{"alice": {"9-9"}}

	items, err := st.Encode(model.KeyBookRequests, model.KeyTotalSavings, model.KeyCurrentPersona, model.KeyUserRequests)
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Equal(t, `"professor"`, string(items[model.KeyCurrentPersona]))
	require.Equal(t, `99.5`, string(items[model.KeyTotalSavings]))

	decoded, err := model.DecodeState(items)
	require.NoError(t, err)
	require.Equal(t, []string{"9-9", "1-1"}, decoded.BookRequests.Keys())
	entry, _ := decoded.BookRequests.Get("9-9")
	require.Equal(t, 2, entry.RequestCount)
	require.True(t, when.Equal(entry.RequestedDate))
	require.Equal(t, 99.5, decoded.TotalSavings)
	require.Equal(t, model.PersonaProfessor, decoded.CurrentPersona)
	require.Equal(t, []string{"9-9"}, decoded.UserRequests["alice"])
	require.Nil(t, decoded.BorrowedBooks, "absent keys decode to zero values")
	require.Nil(t, decoded.CurrentBook)
}

func TestState_UnknownKey(t *testing.T) {
	_, err := model.DecodeState(model.Items{"badge": []byte(`1`)})
	require.Error(t, err)

	_, err = model.State{}.Encode("badge")
	require.Error(t, err)
}

func TestState_CloneIsDeep(t *testing.T) {
	var st model.State
	st.CourseReserves.Set("CS101", []model.CourseReserveItem{{ClassSize: 30}})
	st.UserRequests = model.UserRequests{"alice": {"1"}}

	clone := st.Clone()
	items, _ := clone.CourseReserves.Get("CS101")
	items[0].ClassSize = 99
	clone.UserRequests["alice"][0] = "2"
	clone.CourseReserves.Set("CS201", nil)

	stored, _ := st.CourseReserves.Get("CS101")
	require.Equal(t, 30, stored[0].ClassSize)
	require.Equal(t, "1", st.UserRequests["alice"][0])
	require.Equal(t, 1, st.CourseReserves.Len())
}
