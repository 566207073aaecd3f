package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantSchema(t *testing.T) {
	assert.Equal(t, "acme", TenantSchema("acme.worksight.com"))
	assert.Equal(t, "northside", TenantSchema("northside.staging.worksight.com"))
}

func TestTenantSchemaLocalhost(t *testing.T) {
	t.Setenv("WORKSIGHT_DSN", "root:development@tcp(localhost:3306)/acme_dev?parseTime=true")
	assert.Equal(t, "acme_dev", TenantSchema("localhost"))

	t.Setenv("WORKSIGHT_DSN", "root:development@tcp(localhost:3306)/acme_dev")
	assert.Equal(t, "acme_dev", TenantSchema("localhost"))
}
