package polyhash

// Exported aliases for white-box arithmetic tests.
var MulAddModForTest = mulAddMod
