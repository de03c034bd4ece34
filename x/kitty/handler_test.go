package kitty

import (
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/weavetest"
	. "github.com/smartystreets/goconvey/convey"
)

type handlerRouter map[string]weave.Handler

func (r handlerRouter) Handle(m weave.Msg, h weave.Handler) {
	r[m.Path()] = h
}

func TestHandlers(t *testing.T) {
	Convey("Given registered kitty handlers", t, func() {
		f := newFixture(t, 3)
		alice := weavetest.NewCondition()
		bob := weavetest.NewCondition()
		auth := &weavetest.CtxAuth{Key: "kitty"}

		router := make(handlerRouter)
		RegisterRoutes(router, auth, f.registry)
		So(router, ShouldHaveLength, 4)

		deliver := func(signer weave.Condition, msg weave.Msg) (*weave.DeliverResult, error) {
			ctx, info := f.block(t)
			if signer != nil {
				ctx = auth.SetConditions(ctx, signer)
			}
			return router[msg.Path()].Deliver(ctx, info, f.db, &weavetest.Tx{Msg: msg})
		}
		check := func(signer weave.Condition, msg weave.Msg) error {
			ctx, info := f.block(t)
			if signer != nil {
				ctx = auth.SetConditions(ctx, signer)
			}
			_, err := router[msg.Path()].Check(ctx, info, f.db, &weavetest.Tx{Msg: msg})
			return err
		}

		Convey("An unsigned create is rejected", func() {
			So(errors.ErrUnauthorized.Is(check(nil, &CreateKittyMsg{})), ShouldBeTrue)
			_, err := deliver(nil, &CreateKittyMsg{})
			So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
			So(f.count(t), ShouldEqual, 0)
		})

		Convey("Creating a kitty", func() {
			So(check(alice, &CreateKittyMsg{}), ShouldBeNil)
			res, err := deliver(alice, &CreateKittyMsg{})
			So(err, ShouldBeNil)
			So(res.Data, ShouldHaveLength, DNASize)
			id := res.Data

			k := f.kitty(t, id)
			So(k.Owner, ShouldResemble, alice.Address())
			So(tagValue(res, TagAction), ShouldEqual, "create")
			So(tagValue(res, TagKitty), ShouldEqual, hexID(id))

			Convey("its owner can set the price", func() {
				res, err := deliver(alice, &SetPriceMsg{KittyID: id, Price: mony(50)})
				So(err, ShouldBeNil)
				So(tagValue(res, TagAction), ShouldEqual, "set_price")
				So(f.kitty(t, id).Price, ShouldResemble, mony(50))

				Convey("and another user can buy it", func() {
					f.fund(t, bob.Address(), *mony(80))
					res, err := deliver(bob, &BuyKittyMsg{KittyID: id})
					So(err, ShouldBeNil)
					So(tagValue(res, TagAction), ShouldEqual, "transfer")
					So(tagValue(res, TagOwner), ShouldEqual, bob.Address().String())

					k := f.kitty(t, id)
					So(k.Owner, ShouldResemble, bob.Address())
					So(k.Price, ShouldBeNil)
					So(f.balance(t, alice.Address()).Equals(weaveCoins(mony(50))), ShouldBeTrue)
					So(f.balance(t, bob.Address()).Equals(weaveCoins(mony(30))), ShouldBeTrue)
				})

				Convey("and remove it from sale", func() {
					_, err := deliver(alice, &SetPriceMsg{KittyID: id})
					So(err, ShouldBeNil)
					So(f.kitty(t, id).Price, ShouldBeNil)
				})
			})

			Convey("another user cannot set the price", func() {
				_, err := deliver(bob, &SetPriceMsg{KittyID: id, Price: mony(10)})
				So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
				So(f.kitty(t, id).Price, ShouldBeNil)
			})

			Convey("its owner can give it away", func() {
				res, err := deliver(alice, &TransferKittyMsg{KittyID: id, Recipient: bob.Address()})
				So(err, ShouldBeNil)
				So(res.Data, ShouldResemble, id)
				So(f.kitty(t, id).Owner, ShouldResemble, bob.Address())
				So(f.registry.CheckInvariants(f.db), ShouldBeNil)
			})

			Convey("it cannot be given to its owner", func() {
				_, err := deliver(alice, &TransferKittyMsg{KittyID: id, Recipient: alice.Address()})
				So(ErrSelfTransfer.Is(err), ShouldBeTrue)
			})

			Convey("it cannot be bought when not for sale", func() {
				_, err := deliver(bob, &BuyKittyMsg{KittyID: id})
				So(ErrNotForSale.Is(err), ShouldBeTrue)
			})
		})

		Convey("Invalid messages are rejected before execution", func() {
			So(errors.ErrInput.Is(check(alice, &BuyKittyMsg{KittyID: []byte("short")})), ShouldBeTrue)
			So(errors.ErrInput.Is(check(alice, &TransferKittyMsg{KittyID: dna(1)})), ShouldBeTrue)
			So(errors.ErrAmount.Is(check(alice, &SetPriceMsg{KittyID: dna(1), Price: mony(0)})), ShouldBeTrue)
		})
	})
}

func tagValue(res *weave.DeliverResult, key string) string {
	for _, t := range res.Tags {
		if string(t.Key) == key {
			return string(t.Value)
		}
	}
	return ""
}

func weaveCoins(cs ...*coin.Coin) coin.Coins {
	return coin.Coins(cs)
}

func TestInitializer(t *testing.T) {
	Convey("Kitty genesis", t, func() {
		f := newFixture(t, 3)

		Convey("without configuration keeps the default", func() {
			So(Initializer{}.FromGenesis(weave.Options{}, f.db), ShouldBeNil)
			conf, err := LoadConfiguration(f.db)
			So(err, ShouldBeNil)
			So(conf.MaxOwned, ShouldEqual, DefaultMaxOwned)
		})

		Convey("with configuration stores it", func() {
			opts := weave.Options{"conf": []byte(`{"kitty": {"max_owned": 10}}`)}
			So(Initializer{}.FromGenesis(opts, f.db), ShouldBeNil)
			conf, err := LoadConfiguration(f.db)
			So(err, ShouldBeNil)
			So(conf.MaxOwned, ShouldEqual, 10)
		})

		Convey("with invalid configuration fails", func() {
			opts := weave.Options{"conf": []byte(`{"kitty": {"max_owned": 0}}`)}
			So(errors.ErrInput.Is(Initializer{}.FromGenesis(opts, f.db)), ShouldBeTrue)
		})
	})
}
