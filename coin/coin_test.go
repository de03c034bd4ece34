package coin

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/weavetest/assert"
)

func TestCompareCoin(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		wantRes int
	}{
		"a greater than b": {
			a:       NewCoin(20, 1234, "KIT"),
			b:       NewCoin(19, 999999999, "KIT"),
			wantRes: 1,
		},
		"a smaller than b": {
			a:       NewCoin(0, -2, "KIT"),
			b:       NewCoin(0, 1, "KIT"),
			wantRes: -1,
		},
		"equal": {
			a:       NewCoin(7, 1, "KIT"),
			b:       NewCoin(7, 1, "KIT"),
			wantRes: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.a.Compare(tc.b))
			assert.Equal(t, -tc.wantRes, tc.b.Compare(tc.a))
		})
	}
}

func TestAddCoin(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		want    Coin
		wantErr *errors.Error
	}{
		"same currency": {
			a:    NewCoin(1, 500000000, "KIT"),
			b:    NewCoin(2, 600000000, "KIT"),
			want: NewCoin(4, 100000000, "KIT"),
		},
		"negative result keeps sign consistent": {
			a:    NewCoin(1, 0, "KIT"),
			b:    NewCoin(2, 500000000, "KIT").Negative(),
			want: NewCoin(1, 500000000, "KIT").Negative(),
		},
		"zero without ticker is neutral": {
			a:    Coin{},
			b:    NewCoin(3, 0, "KIT"),
			want: NewCoin(3, 0, "KIT"),
		},
		"different currencies": {
			a:       NewCoin(1, 0, "KIT"),
			b:       NewCoin(1, 0, "ETH"),
			wantErr: errors.ErrCurrency,
		},
		"overflow": {
			a:       NewCoin(MaxInt, 0, "KIT"),
			b:       NewCoin(1, 0, "KIT"),
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			if !tc.want.Equals(got) {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCoinSubtractAndGTE(t *testing.T) {
	balance := NewCoin(100, 0, "KIT")
	price := NewCoin(40, 250000000, "KIT")

	assert.Equal(t, true, balance.IsGTE(price))
	assert.Equal(t, false, price.IsGTE(balance))
	assert.Equal(t, false, balance.IsGTE(NewCoin(1, 0, "ETH")))

	left, err := balance.Subtract(price)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(59, 750000000, "KIT"), left)
	assert.Equal(t, true, left.IsPositive())
	assert.Equal(t, false, left.Negative().IsNonNegative())
}

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		c       Coin
		wantErr *errors.Error
	}{
		"valid":                {c: NewCoin(1, 2, "KIT")},
		"lowercase ticker":     {c: NewCoin(1, 0, "kit"), wantErr: errors.ErrCurrency},
		"missing ticker":       {c: NewCoin(1, 0, ""), wantErr: errors.ErrCurrency},
		"whole too big":        {c: NewCoin(MaxInt+1, 0, "KIT"), wantErr: errors.ErrOverflow},
		"fractional too big":   {c: NewCoin(1, FracUnit, "KIT"), wantErr: errors.ErrOverflow},
		"mismatched sign":      {c: NewCoin(1, -1, "KIT"), wantErr: errors.ErrState},
		"negative is accepted": {c: NewCoin(-1, -1, "KIT")},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestHumanFormat(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr bool
	}{
		"whole":                     {raw: "5 KIT", want: NewCoin(5, 0, "KIT")},
		"no space":                  {raw: "5KIT", want: NewCoin(5, 0, "KIT")},
		"fractional":                {raw: "1.25 KIT", want: NewCoin(1, 250000000, "KIT")},
		"smallest unit":             {raw: "0.000000001 KIT", want: NewCoin(0, 1, "KIT")},
		"negative":                  {raw: "-2.5 KIT", want: NewCoin(2, 500000000, "KIT").Negative()},
		"missing ticker":            {raw: "5", wantErr: true},
		"missing whole":             {raw: ".5 KIT", wantErr: true},
		"ticker too long":           {raw: "1 KITTY", wantErr: true},
		"double negative":           {raw: "--1 KIT", wantErr: true},
		"lowercase ticker rejected": {raw: "1 kit", wantErr: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.raw)
			if tc.wantErr {
				assert.IsErr(t, errors.ErrInput, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)

			// String output can always be parsed back.
			again, err := ParseHumanFormat(got.String())
			assert.Nil(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestCoinString(t *testing.T) {
	assert.Equal(t, "0", Coin{}.String())
	assert.Equal(t, "0 KIT", Coin{Ticker: "KIT"}.String())
	assert.Equal(t, "0.01 KIT", NewCoin(0, FracUnit/100, "KIT").String())
	assert.Equal(t, "-50 KIT", NewCoin(50, 0, "KIT").Negative().String())
	assert.Equal(t, "999999999999999.999999999 KIT", NewCoin(MaxInt, MaxFrac, "KIT").String())
}

func TestCoinJSON(t *testing.T) {
	var human Coin
	assert.Nil(t, json.Unmarshal([]byte(`"3.5 KIT"`), &human))
	assert.Equal(t, NewCoin(3, 500000000, "KIT"), human)

	var fields Coin
	assert.Nil(t, json.Unmarshal([]byte(`{"whole": 1, "fractional": 2, "ticker": "KIT"}`), &fields))
	assert.Equal(t, NewCoin(1, 2, "KIT"), fields)

	var broken Coin
	if err := json.Unmarshal([]byte(`"3.5"`), &broken); err == nil {
		t.Fatal("want an error for a coin without a ticker")
	}
}

func TestCoinProtobuf(t *testing.T) {
	c := NewCoinp(12, 345, "KIT")
	raw, err := proto.Marshal(c)
	assert.Nil(t, err)

	var got Coin
	assert.Nil(t, proto.Unmarshal(raw, &got))
	assert.Equal(t, *c, got)
}

func TestCoinFlagValue(t *testing.T) {
	var c Coin
	assert.Nil(t, c.Set("7 KIT"))
	assert.Equal(t, NewCoin(7, 0, "KIT"), c)
	assert.Equal(t, "coin", c.Type())
	if err := c.Set("seven"); err == nil {
		t.Fatal("want an error for an invalid value")
	}
}
