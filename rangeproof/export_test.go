package rangeproof

var MockValues = mockValues
