package orders

const TopicOrderPlaced = "storefront.order.placed"

// Partition key = order_id so every event for one order keeps its order.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
