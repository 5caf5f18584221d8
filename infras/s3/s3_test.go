package s3_test

import (
	"dockhub/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://files.dock.test/imports/a.csv", s3.ObjectURL("https://files.dock.test/", "/imports/a.csv"))
	assert.Equal(t, "https://files.dock.test/imports/a.csv", s3.ObjectURL("https://files.dock.test", "imports/a.csv"))
}

func TestObject_Key(t *testing.T) {
	assert.Equal(t, "appointments/imports/a.xlsx", s3.Object{Directory: "appointments/imports", Name: "a.xlsx"}.Key())
	assert.Equal(t, "a.xlsx", s3.Object{Directory: "/", Name: "a.xlsx"}.Key())
}
