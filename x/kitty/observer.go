package kitty

import (
	"encoding/hex"
	"strings"

	weave "github.com/iov-one/kitties"
	"github.com/tendermint/tendermint/libs/common"
)

// Observer is notified about every successful registry change. Notifications
// are sent only after the change was written.
type Observer interface {
	KittyCreated(info weave.BlockInfo, k *Kitty)
	PriceSet(info weave.BlockInfo, k *Kitty)
	KittyTransferred(info weave.BlockInfo, from weave.Address, k *Kitty)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) KittyCreated(weave.BlockInfo, *Kitty)                    {}
func (NopObserver) PriceSet(weave.BlockInfo, *Kitty)                        {}
func (NopObserver) KittyTransferred(weave.BlockInfo, weave.Address, *Kitty) {}

// LogObserver writes every notification to the block logger.
type LogObserver struct{}

var _ Observer = LogObserver{}

func (LogObserver) KittyCreated(info weave.BlockInfo, k *Kitty) {
	info.Logger().Info("kitty created",
		"id", hexID(k.ID), "owner", k.Owner, "gender", k.Gender)
}

func (LogObserver) PriceSet(info weave.BlockInfo, k *Kitty) {
	price := "none"
	if k.Price != nil {
		price = k.Price.String()
	}
	info.Logger().Info("kitty price set", "id", hexID(k.ID), "price", price)
}

func (LogObserver) KittyTransferred(info weave.BlockInfo, from weave.Address, k *Kitty) {
	info.Logger().Info("kitty transferred",
		"id", hexID(k.ID), "from", from, "to", k.Owner)
}

// Tag keys used by TagObserver.
const (
	TagKitty  = "kitty"
	TagOwner  = "kitty.owner"
	TagAction = "kitty.action"
)

// TagObserver collects tags describing the notifications, so that they can be
// returned with the transaction result.
type TagObserver struct {
	Tags []common.KVPair
}

var _ Observer = (*TagObserver)(nil)

func (t *TagObserver) KittyCreated(info weave.BlockInfo, k *Kitty) {
	t.add("create", k)
}

func (t *TagObserver) PriceSet(info weave.BlockInfo, k *Kitty) {
	t.add("set_price", k)
}

func (t *TagObserver) KittyTransferred(info weave.BlockInfo, from weave.Address, k *Kitty) {
	t.add("transfer", k)
}

func (t *TagObserver) add(action string, k *Kitty) {
	t.Tags = append(t.Tags,
		common.KVPair{Key: []byte(TagAction), Value: []byte(action)},
		common.KVPair{Key: []byte(TagKitty), Value: []byte(hexID(k.ID))},
		common.KVPair{Key: []byte(TagOwner), Value: []byte(k.Owner.String())},
	)
}

// Observers sends every notification to all of its elements.
type Observers []Observer

var _ Observer = Observers(nil)

func (os Observers) KittyCreated(info weave.BlockInfo, k *Kitty) {
	for _, o := range os {
		o.KittyCreated(info, k)
	}
}

func (os Observers) PriceSet(info weave.BlockInfo, k *Kitty) {
	for _, o := range os {
		o.PriceSet(info, k)
	}
}

func (os Observers) KittyTransferred(info weave.BlockInfo, from weave.Address, k *Kitty) {
	for _, o := range os {
		o.KittyTransferred(info, from, k)
	}
}

func hexID(id []byte) string {
	return strings.ToUpper(hex.EncodeToString(id))
}
