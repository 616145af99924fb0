package spincube

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcsReflect_SliceMake(t *testing.T) {
	type myStruct struct{ A int }

	s := reflectSliceMake(reflect.TypeOf(myStruct{}))
	require.Equal(t, reflect.Slice, reflect.TypeOf(s).Kind())
	assert.Equal(t, reflect.TypeOf(myStruct{}), reflect.TypeOf(s).Elem())
	assert.Empty(t, s)
}

func TestEcsReflect_SetAndGet(t *testing.T) {
	slice := []int{1, 2}
	reflectSliceSet(slice, 0, reflect.ValueOf(99))

	assert.Equal(t, 99, slice[0])
	assert.Equal(t, int64(2), reflectSliceGet(slice, 1).Int())
}

func TestEcsReflect_Append(t *testing.T) {
	var slice any = []int{}
	for i := 0; i < 5; i++ {
		slice = reflectSliceAppend(slice, reflect.ValueOf(i))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, slice)
}

func TestEcsReflect_Panics(t *testing.T) {
	assert.Panics(t, func() { reflectSliceGet([]int{1, 2}, 10) }, "out of bounds")
	assert.Panics(t, func() { reflectSliceSet([]int{1, 2}, 0, reflect.ValueOf("wrong type")) }, "type mismatch")
	assert.Panics(t, func() { reflectSliceAppend([]int{}, reflect.ValueOf("string")) }, "append type mismatch")
}
