package shared

// Name is the name of the application, used to prefix errors and logs.
const Name = "esload"
