package app

import (
	"context"
	"fmt"
	"time"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Application executes transactions on top of a CommitKVStore. Every call to
// DeliverBlock is processed as a single block that is committed to disk only
// when all of its transactions succeed.
//
// Application is not safe for concurrent use.
type Application struct {
	name        string
	store       *CommitStore
	handler     weave.Handler
	initializer weave.Initializer
	logger      log.Logger

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string
}

// NewApplication loads the latest state from the store.
func NewApplication(
	name string,
	store weave.CommitKVStore,
	handler weave.Handler,
	initializer weave.Initializer,
	logger log.Logger,
) (*Application, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	return &Application{
		name:        name,
		store:       cs,
		handler:     handler,
		initializer: initializer,
		logger:      logger,
		chainID:     chainID,
	}, nil
}

// ChainID returns the chain identifier set at genesis. It is empty until
// InitChain was called.
func (a *Application) ChainID() string {
	return a.chainID
}

// Logger returns the application base logger
func (a *Application) Logger() log.Logger {
	return a.logger
}

// Height returns the height of the last committed block.
func (a *Application) Height() (int64, error) {
	info, err := a.store.CommitInfo()
	if err != nil {
		return 0, err
	}
	return info.Version, nil
}

// ReadStore returns a view of the last committed state.
func (a *Application) ReadStore() weave.ReadOnlyKVStore {
	return a.store.ReadStore()
}

// InitChain stores the chain ID and passes the application state to the
// initializer. Genesis is committed as the first block.
func (a *Application) InitChain(gen Genesis) error {
	if a.chainID != "" {
		return errors.Wrapf(errors.ErrState, "already initialized for chain %q", a.chainID)
	}
	db := a.store.DeliverStore()
	if err := saveChainID(db, gen.ChainID); err != nil {
		a.store.Rollback()
		return err
	}
	if a.initializer != nil {
		if err := a.initializer.FromGenesis(gen.AppState, db); err != nil {
			a.store.Rollback()
			return errors.Wrap(err, "genesis")
		}
	}
	res, err := a.store.Commit()
	if err != nil {
		return errors.Wrap(err, "commit genesis")
	}
	a.chainID = gen.ChainID
	a.logger.Info("Genesis committed",
		"chain", a.chainID,
		"height", res.Version,
		"hash", fmt.Sprintf("%X", res.Hash))
	return nil
}

// BlockResult describes a committed block.
type BlockResult struct {
	Height  int64
	Hash    []byte
	Results []*weave.DeliverResult
}

// CheckTx validates the transaction against the state of the next block
// without persisting anything.
func (a *Application) CheckTx(now time.Time, tx weave.Tx) (*weave.CheckResult, error) {
	info, err := a.nextBlock(now)
	if err != nil {
		return nil, err
	}
	defer a.store.Rollback()
	ctx := weave.WithTxIndex(context.Background(), 0)
	return a.handler.Check(ctx, info, a.store.CheckStore(), tx)
}

// DeliverBlock executes all transactions in order as a block created at
// given time. The block is committed only if every transaction succeeds,
// otherwise the state is left untouched and the first failure is returned.
func (a *Application) DeliverBlock(now time.Time, txs ...weave.Tx) (*BlockResult, error) {
	info, err := a.nextBlock(now)
	if err != nil {
		return nil, err
	}

	db := a.store.DeliverStore()
	results := make([]*weave.DeliverResult, 0, len(txs))
	for i, tx := range txs {
		ctx := weave.WithTxIndex(context.Background(), uint32(i))
		res, err := a.handler.Deliver(ctx, info, db, tx)
		if err != nil {
			a.store.Rollback()
			return nil, errors.Wrapf(err, "tx %d (%s)", i, weave.GetPath(tx))
		}
		results = append(results, res)
	}

	commit, err := a.store.Commit()
	if err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	a.logger.Debug("Commit synced",
		"height", commit.Version,
		"hash", fmt.Sprintf("%X", commit.Hash),
	)
	return &BlockResult{
		Height:  commit.Version,
		Hash:    commit.Hash,
		Results: results,
	}, nil
}

// nextBlock describes the block following the last committed one. The hash
// of the last commit is used both as the previous block ID and as the
// application hash.
func (a *Application) nextBlock(now time.Time) (weave.BlockInfo, error) {
	if a.chainID == "" {
		return weave.BlockInfo{}, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	last, err := a.store.CommitInfo()
	if err != nil {
		return weave.BlockInfo{}, err
	}
	header := abci.Header{
		ChainID:     a.chainID,
		Height:      last.Version + 1,
		Time:        now.UTC(),
		LastBlockId: abci.BlockID{Hash: last.Hash},
		AppHash:     last.Hash,
	}
	return weave.NewBlockInfo(header, a.chainID, a.logger.With("module", a.name))
}
