package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"undangan.link/models"
)

// Export -> Import -> Export kayıpsız olmalı (zaman damgaları hariç).
func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	source := newTestStore(t)
	require.NoError(t, source.UpdateDate(ctx, "12 Desember 2025"))
	require.NoError(t, source.UpdateVendors(ctx, []models.Vendor{
		{ID: "v1", Name: "Acme", Category: "Catering", Details: []string{"A", "B"}},
	}))
	require.NoError(t, source.Images.Update(ctx, models.ImageSet{
		"couple_1.jpg": {URI: "https://depo/couple_1.jpg", Category: "couple", SavedAt: "2025-01-01T00:00:00Z"},
	}))

	raw, err := NewExportService(source).ExportJSON()
	require.NoError(t, err)

	target := newTestStore(t)
	require.NoError(t, NewExportService(target).ImportJSON(ctx, raw))

	assert.Equal(t, source.Aggregate(), target.Aggregate())
	assert.Equal(t, source.Images.Get(), target.Images.Get())
}

func TestExportDocumentShape(t *testing.T) {
	doc := NewExportService(newTestStore(t)).Export()

	assert.Equal(t, ExportVersion, doc.Version)
	assert.NotEmpty(t, doc.ExportedAt)
	assert.NotNil(t, doc.Images)
	assert.NotEmpty(t, doc.Data.Schedule)
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	err := NewExportService(newTestStore(t)).ImportJSON(context.Background(), []byte("bu json degil"))
	assert.Error(t, err)
}

// Eski dosyalar exportedAt yerine lastUpdated taşır; ikisi de kabul edilir.
func TestImportAcceptsLastUpdatedDocuments(t *testing.T) {
	ctx := context.Background()
	target := newTestStore(t)

	raw := []byte(`{
		"version": "1.0.0",
		"lastUpdated": "2024-06-01T10:00:00Z",
		"data": {
			"couple": {"groom": {"name": "Davis"}, "bride": {"name": "Fera"}},
			"date": "20 Oktober 2024",
			"venue": {"name": "Griya Joglo"},
			"theme": {"id": "classic"},
			"schedule": [],
			"committee": [],
			"vendors": [],
			"coordinators": [],
			"moodboard": [],
			"eventSummary": {"place": "Griya Joglo"}
		},
		"images": {}
	}`)

	require.NoError(t, NewExportService(target).ImportJSON(ctx, raw))
	assert.Equal(t, "Griya Joglo", target.Core.Get().Venue.Name)
	assert.Empty(t, target.Schedule.Get())
}
