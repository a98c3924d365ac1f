package core

func DrainEventBatches(batches <-chan *EventBatch) []*EventBatch {
	var ret []*EventBatch
	for b := range batches {
		ret = append(ret, b)
	}
	return ret
}

func MakeEventBatchChan(batches ...*EventBatch) <-chan *EventBatch {
	ch := make(chan *EventBatch, len(batches))
	for _, b := range batches {
		ch <- b
	}
	close(ch)
	return ch
}
