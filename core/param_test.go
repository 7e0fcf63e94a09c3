package core_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/alejandrodnm/cyhole/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageSize int

var pageSizes = core.NewSet[pageSize]("PageSize", 10, 20, 40)

func (p pageSize) Valid() error { return pageSizes.Check("page_size", p) }

func TestSet_Check(t *testing.T) {
	assert.NoError(t, chains.Check("chain", chainSolana))
	assert.NoError(t, chains.CheckOptional("chain", ""))
	assert.True(t, chains.Contains(chainEthereum))
	assert.Equal(t, "Chain", chains.Name())

	err := pageSizes.Check("page_size", 15)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "param '15' not supported in PageSize set")
	assert.Contains(t, err.Error(), "10, 20, 40")

	err = chains.CheckAll("chains", []chain{chainSolana, "base"})
	e, ok := core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "base", e.Value)
}

func TestSet_ValuesIsCopy(t *testing.T) {
	vs := chains.Values()
	vs[0] = "mutated"
	assert.Equal(t, chainSolana, chains.Values()[0])
}

func TestParams_Encoding(t *testing.T) {
	zero := 0
	yes := false
	p := core.NewParams().
		Add("address", "So111").
		Add("empty", "").
		Add("offset", 0).
		Add("explicit_zero", &zero).
		Add("nil_ptr", (*int)(nil)).
		Add("flag", true).
		Add("explicit_false", &yes).
		Add("ratio", 0.25).
		Add("page_size", pageSize(20)).
		Join("list_address", []string{"a", "b"}).
		Join("none", nil).
		Repeat("token[]", []string{"x", "y"})

	require.NoError(t, p.Err())
	v := p.Values()
	assert.Equal(t, "So111", v.Get("address"))
	assert.False(t, v.Has("empty"))
	assert.False(t, v.Has("offset"))
	assert.Equal(t, "0", v.Get("explicit_zero"))
	assert.False(t, v.Has("nil_ptr"))
	assert.Equal(t, "true", v.Get("flag"))
	assert.Equal(t, "false", v.Get("explicit_false"))
	assert.Equal(t, "0.25", v.Get("ratio"))
	assert.Equal(t, "20", v.Get("page_size"))
	assert.Equal(t, "a,b", v.Get("list_address"))
	assert.False(t, v.Has("none"))
	assert.Equal(t, []string{"x", "y"}, v["token[]"])
}

func TestParams_InvalidMember(t *testing.T) {
	p := core.NewParams().Add("page_size", pageSize(15)).Add("chain", chain("marsnet"))

	_, err := p.Encode()
	require.Error(t, err)
	e, _ := core.AsError(err)
	assert.Equal(t, "page_size", e.Field)
	assert.Equal(t, "15", e.Value)
}

func TestExtractMessage(t *testing.T) {
	cases := []struct{ body, want string }{
		{`{"message":"invalid key"}`, "invalid key"},
		{`{"success":false,"errors":{"code":1100,"message":"bad"}}`, "bad"},
		{`{"status":400,"error":{"message":"nested"}}`, "nested"},
		{`{"error":"flat"}`, "flat"},
		{`{"msg":"short"}`, "short"},
		{`{"other":1}`, ""},
		{`Bad Gateway`, "Bad Gateway"},
		{``, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, core.ExtractMessage([]byte(tc.body)), tc.body)
	}

	assert.Equal(t, "1100", core.ExtractField([]byte(`{"errors":{"code":1100}}`), []string{"errors", "code"}))
	assert.Equal(t, "", core.ExtractField([]byte(`nope`), []string{"code"}))
}

func TestFixtureTransport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "test", "v1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test", "v1", "token_list.json"),
		[]byte(`{"data":{"tokens":[{"name":"BONK","volume_24h_usd":7}]}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test", "export.csv"), []byte("a,b\n"), 0o644))

	in := core.NewInteraction(testProvider, core.Options{BaseURL: "https://example.invalid/v1", MockDir: dir})
	ctx := context.Background()

	res, err := tokenList(in, chainSolana).Do(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BONK", res.Data.Tokens[0].Name)

	csvReq := in.Request("export", http.MethodGet, "")
	csvReq.URL = "https://example.invalid/export"
	csv, err := core.NewRawCall(in, csvReq, nil).Do(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", csv)

	_, err = core.NewCall[tokenListResponse](in, in.Request("missing", http.MethodGet, "/missing"), nil).Do(ctx)
	e, ok := core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, e.StatusCode)
	assert.Contains(t, e.Message, "no fixture")
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "https://a.b/v1/x", core.JoinURL("https://a.b/v1/", "/x"))
	assert.Equal(t, "https://a.b/v1", core.JoinURL("https://a.b/v1", ""))
}
