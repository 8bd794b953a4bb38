// Package behavior wraps the behavioral classifier collaborator.
//
// A [Model] predicts a severity label from a fixed-order feature vector.
// Two implementations exist: a softmax model read from a JSON artifact
// ([LoadFileModel]) and a client for a remote model-serving endpoint
// ([NewRemoteModel]). [Load] picks one from configuration; a nil Model
// means the service runs without behavioral corroboration.
package behavior
