package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

func TestBasesClient_Create(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/bases", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]string

		decodeRequestJSON(t, request, &body)
		assert.Equal(t, "Invoices", body["name"])

		writer.WriteHeader(http.StatusCreated)
		writeEnvelope(t, writer, gridbase.Base{ID: "base-1", Name: "Invoices"})
	})

	base, err := client.Bases().Create(context.Background(), &gridbase.BaseCreateRequest{Name: "Invoices"})
	require.NoError(t, err)
	assert.Equal(t, "base-1", base.ID)
	assert.Equal(t, "Invoices", base.Name)
}

func TestBasesClient_List(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/bases", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeEnvelope(t, writer, []gridbase.Base{
			{ID: "base-1", Name: "Invoices"},
			{ID: "base-2", Name: "CRM"},
		})
	})

	bases, err := client.Bases().List(context.Background())
	require.NoError(t, err)
	require.Len(t, bases, 2)
	assert.Equal(t, "CRM", bases[1].Name)
}

func TestBasesClient_Get(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/bases/base-1", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeEnvelope(t, writer, gridbase.Base{ID: "base-1", Name: "Invoices", OwnerID: "user-1"})
	})

	base, err := client.Bases().Get(context.Background(), "base-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", base.OwnerID)
}

func TestBasesClient_Update(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/bases/base-1", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)

		var body map[string]string

		decodeRequestJSON(t, request, &body)
		assert.Equal(t, "Invoices 2026", body["name"])

		writeEnvelope(t, writer, gridbase.Base{ID: "base-1", Name: "Invoices 2026"})
	})

	name := "Invoices 2026"
	base, err := client.Bases().Update(context.Background(), "base-1", &gridbase.BaseUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Invoices 2026", base.Name)
}

func TestBasesClient_Delete(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/bases/base-1", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		writeEnvelope(t, writer, nil)
	})

	err := client.Bases().Delete(context.Background(), "base-1")
	require.NoError(t, err)
}

func TestBasesClient_Share(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/bases/base-1/share", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]string

		decodeRequestJSON(t, request, &body)
		assert.Equal(t, "teammate@example.com", body["email"])
		assert.Equal(t, "editor", body["role"])

		writeEnvelope(t, writer, nil)
	})

	err := client.Bases().Share(context.Background(), "base-1", &gridbase.BaseShareRequest{
		Email: "teammate@example.com",
		Role:  "editor",
	})
	require.NoError(t, err)
}
