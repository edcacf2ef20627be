package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSeed = `
software:
  - id: 1
    name: Ledger Pro
    slug: ledger-pro
    category: Accounting
    price_one_time: 25000
    price_yearly: 8000
    sort_order: 2
    gallery: [/assets/uploads/ledger-1.png, /assets/uploads/ledger-2.png]
  - id: 2
    name: Backup Tool
    is_free: true
    download_url: /downloads/backup.zip
clients:
  - id: 1
    name: Acme Traders
    city: Lahore
known_issues:
  - id: 1
    title: RDP sessions on Windows 7
    content: Use Windows Server.
releases:
  - id: 1
    title: Ledger 3.0
    software_id: 1
    release_date: "2024-05-02T10:30:00.123456"
`

func TestDecodeSeed(t *testing.T) {
	t.Parallel()

	data, err := DecodeSeed(strings.NewReader(sampleSeed))
	require.NoError(t, err)

	require.Len(t, data.Software, 2)
	require.Equal(t, "ledger-pro", data.Software[0].Slug)
	require.Equal(t, 2, data.Software[0].Order())
	require.InDelta(t, 25000, *data.Software[0].PriceOneTime, 0)
	require.Len(t, data.Software[0].Gallery, 2)
	require.True(t, data.Software[1].Free())
	require.True(t, data.Software[1].Active())

	require.Len(t, data.Clients, 1)
	require.Len(t, data.Issues, 1)
	require.Len(t, data.Releases, 1)
	require.Equal(t, "2024-05-02T10:30:00Z", data.Releases[0].ReleaseDate)
	require.EqualValues(t, 1, *data.Releases[0].SoftwareID)
}

func TestDecodeSeedRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	_, err := DecodeSeed(strings.NewReader("software:\n  - {id: 1, name: A}\n  - {id: 1, name: B}\n"))
	require.ErrorContains(t, err, "duplicate software id 1")
}

func TestDecodeSeedRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := DecodeSeed(strings.NewReader("software:\n  - {id: 1, name: A, colour: red}\n"))
	require.Error(t, err)
}

func TestDecodeSeedRejectsBadReleaseDate(t *testing.T) {
	t.Parallel()

	_, err := DecodeSeed(strings.NewReader("releases:\n  - {id: 4, title: X, release_date: yesterday}\n"))
	require.ErrorContains(t, err, "release 4")
}

func TestDecodeSeedEmptyDocument(t *testing.T) {
	t.Parallel()

	data, err := DecodeSeed(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, data.Software)
}
